package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pipeline statuses
const (
	StatusActive    = "Active"
	StatusEnrolled  = "Enrolled"
	StatusWithdrawn = "Withdrawn"
	StatusCooling   = "Cooling"
	StatusDormant   = "Dormant"
	StatusArchived  = "Archived"
)

// Relationship types
const (
	RelationshipLead    = "Lead"
	RelationshipLearner = "Learner"
)

// Value Object: Phone
type Phone struct {
	Number string `json:"number"`
	Type   string `json:"type"` // call, whatsapp, both
}

// Value Object: QuoteItem (one line of a quote)
type QuoteItem struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

// Value Object: CommitmentSnapshot — the lead's proposed course, price
// and schedule as last discussed.
type CommitmentSnapshot struct {
	Courses    []string    `json:"courses,omitempty"`
	PriceCents int64       `json:"price_cents,omitempty"`
	Schedule   string      `json:"schedule,omitempty"`
	Trainer    string      `json:"trainer,omitempty"`
	TimeSlot   string      `json:"time_slot,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Items      []QuoteItem `json:"items,omitempty"`
}

type Lead struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Phones       []Phone `json:"phones,omitempty"`
	Relationship string  `json:"relationship"`
	Status       string  `json:"status"`

	// Automated Follow-up Cycle position. 0 means paused or ended.
	AFCStep      int  `json:"afc_step"`
	HasEngaged   bool `json:"has_engaged"`
	OnFollowList bool `json:"on_follow_list"`

	Insights []string `json:"insights"`
	Traits   []string `json:"traits"`
	Notes    string   `json:"notes,omitempty"`

	CommitmentSnapshot CommitmentSnapshot `json:"commitment_snapshot"`

	LastInteractionDate *time.Time `json:"last_interaction_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Factory
func NewLead(name, email string, phones []Phone) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		Phones:       phones,
		Relationship: RelationshipLead,
		Status:       StatusActive,
		Insights:     []string{},
		Traits:       []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Relationship != RelationshipLead && l.Relationship != RelationshipLearner {
		return errors.New("relationship must be Lead or Learner")
	}
	return nil
}

// Closed reports whether the lead left the active pipeline.
func (l *Lead) Closed() bool {
	return l.Status == StatusEnrolled || l.Status == StatusWithdrawn || l.Status == StatusArchived
}
