package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/http/middleware"
)

// InteractionProcessor is the contract for the pipeline brain.
type InteractionProcessor interface {
	Execute(ctx context.Context, interaction *entity.Interaction) error
}

type Worker struct {
	Channel   *amqp.Channel
	Processor InteractionProcessor
}

func NewWorker(ch *amqp.Channel, processor InteractionProcessor) *Worker {
	return &Worker{
		Channel:   ch,
		Processor: processor,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload InteractionLoggedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Poison message. Reject without requeue so it lands in the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Processing interaction %s for lead %s", payload.InteractionID, payload.LeadID)

			if err := w.Processor.Execute(context.Background(), payload.ToInteraction()); err != nil {
				log.Printf("❌ [WORKER] Processing failed: %s", err)
				d.Nack(false, false)
			} else {
				if payload.QuickLogType == entity.QuickLogUnresponsive {
					middleware.RecordAFCAdvance()
				}
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
