package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Quick-log types
const (
	QuickLogFollowup     = "Followup"
	QuickLogUnchanged    = "Unchanged"
	QuickLogEnrolled     = "Enrolled"
	QuickLogWithdrawn    = "Withdrawn"
	QuickLogUnresponsive = "Unresponsive"
)

// Outcome types
const (
	OutcomeInfo           = "Info"
	OutcomeLater          = "Later"
	OutcomeEventScheduled = "Event Scheduled"
)

// Feedback perceptions
const (
	PerceptionPositive = "Positive"
	PerceptionNegative = "Negative"
)

// Feedback is a thumbs-up/down log with objection chips.
type Feedback struct {
	Perception string   `json:"perception"`
	Objections []string `json:"objections,omitempty"`
}

// EventDetails describes a scheduled event outcome (demo, trial class, ...).
type EventDetails struct {
	Type            string     `json:"type"`
	DateTime        time.Time  `json:"date_time"`
	RescheduledFrom *time.Time `json:"rescheduled_from,omitempty"`
}

// Interaction is one logged touchpoint against a lead. Records are
// append-only: never edited, never deleted (except by lead cascade).
// Exactly one of QuickLogType, Feedback or Outcome is set.
type Interaction struct {
	ID     string `json:"id"`
	LeadID string `json:"lead_id"`

	QuickLogType string        `json:"quick_log_type,omitempty"`
	Feedback     *Feedback     `json:"feedback,omitempty"`
	Outcome      string        `json:"outcome,omitempty"`
	FollowUpDate *time.Time    `json:"follow_up_date,omitempty"`
	EventDetails *EventDetails `json:"event_details,omitempty"`

	Notes  string `json:"notes,omitempty"`
	System bool   `json:"system"` // generated by a worker, not the user

	CreatedAt time.Time `json:"created_at"`
}

func NewInteraction(leadID string) *Interaction {
	return &Interaction{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		CreatedAt: time.Now(),
	}
}

var validQuickLogs = map[string]bool{
	QuickLogFollowup:     true,
	QuickLogUnchanged:    true,
	QuickLogEnrolled:     true,
	QuickLogWithdrawn:    true,
	QuickLogUnresponsive: true,
}

var validOutcomes = map[string]bool{
	OutcomeInfo:           true,
	OutcomeLater:          true,
	OutcomeEventScheduled: true,
}

func (i *Interaction) Validate() error {
	if i.LeadID == "" {
		return errors.New("lead_id is required")
	}

	shapes := 0
	if i.QuickLogType != "" {
		shapes++
		if !validQuickLogs[i.QuickLogType] {
			return errors.New("unknown quick log type: " + i.QuickLogType)
		}
	}
	if i.Feedback != nil {
		shapes++
		if i.Feedback.Perception != PerceptionPositive && i.Feedback.Perception != PerceptionNegative {
			return errors.New("feedback perception must be Positive or Negative")
		}
	}
	if i.Outcome != "" {
		shapes++
		if !validOutcomes[i.Outcome] {
			return errors.New("unknown outcome: " + i.Outcome)
		}
		if i.Outcome == OutcomeLater && i.FollowUpDate == nil {
			return errors.New("outcome Later requires follow_up_date")
		}
		if i.Outcome == OutcomeEventScheduled && (i.EventDetails == nil || i.EventDetails.DateTime.IsZero()) {
			return errors.New("outcome Event Scheduled requires event date_time")
		}
	}

	if shapes != 1 {
		return errors.New("interaction must carry exactly one of quick log, feedback or outcome")
	}
	return nil
}
