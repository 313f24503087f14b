package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// InteractionLoggedPayload carries one logged interaction to the
// processor. It embeds the full record so the worker never has to read
// it back from the store.
type InteractionLoggedPayload struct {
	InteractionID string `json:"interaction_id"`
	LeadID        string `json:"lead_id"`

	QuickLogType string     `json:"quick_log_type,omitempty"`
	Perception   string     `json:"perception,omitempty"`
	Objections   []string   `json:"objections,omitempty"`
	Outcome      string     `json:"outcome,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`

	EventType            string     `json:"event_type,omitempty"`
	EventDateTime        *time.Time `json:"event_date_time,omitempty"`
	EventRescheduledFrom *time.Time `json:"event_rescheduled_from,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	System    bool      `json:"system,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInteractionLoggedPayload flattens an interaction for the wire.
func NewInteractionLoggedPayload(in *entity.Interaction) InteractionLoggedPayload {
	p := InteractionLoggedPayload{
		InteractionID: in.ID,
		LeadID:        in.LeadID,
		QuickLogType:  in.QuickLogType,
		Outcome:       in.Outcome,
		FollowUpDate:  in.FollowUpDate,
		Notes:         in.Notes,
		System:        in.System,
		CreatedAt:     in.CreatedAt,
	}
	if in.Feedback != nil {
		p.Perception = in.Feedback.Perception
		p.Objections = in.Feedback.Objections
	}
	if in.EventDetails != nil {
		p.EventType = in.EventDetails.Type
		dt := in.EventDetails.DateTime
		p.EventDateTime = &dt
		p.EventRescheduledFrom = in.EventDetails.RescheduledFrom
	}
	return p
}

// ToInteraction rebuilds the entity on the consumer side.
func (p InteractionLoggedPayload) ToInteraction() *entity.Interaction {
	in := &entity.Interaction{
		ID:           p.InteractionID,
		LeadID:       p.LeadID,
		QuickLogType: p.QuickLogType,
		Outcome:      p.Outcome,
		FollowUpDate: p.FollowUpDate,
		Notes:        p.Notes,
		System:       p.System,
		CreatedAt:    p.CreatedAt,
	}
	if p.Perception != "" {
		in.Feedback = &entity.Feedback{Perception: p.Perception, Objections: p.Objections}
	}
	if p.EventDateTime != nil {
		in.EventDetails = &entity.EventDetails{
			Type:            p.EventType,
			DateTime:        *p.EventDateTime,
			RescheduledFrom: p.EventRescheduledFrom,
		}
	}
	return in
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishInteractionLogged(ctx context.Context, payload InteractionLoggedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
