package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task natures. Interactive tasks expect a reply from the lead and are
// auto-completed when the lead engages; procedural tasks are internal
// to-dos (send info, confirm attendance, ...).
const (
	NatureInteractive = "Interactive"
	NatureProcedural  = "Procedural"
)

type Task struct {
	ID          string     `json:"id"`
	LeadID      string     `json:"lead_id,omitempty"`
	LeadName    string     `json:"lead_name,omitempty"`
	Description string     `json:"description"`
	Nature      string     `json:"nature"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Factory
func NewTask(leadID, leadName, description, nature string, dueDate *time.Time) (*Task, error) {
	task := &Task{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		LeadName:    leadName,
		Description: description,
		Nature:      nature,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

func (t *Task) Validate() error {
	if t.Description == "" {
		return errors.New("description is required")
	}
	if t.Nature != NatureInteractive && t.Nature != NatureProcedural {
		return errors.New("nature must be Interactive or Procedural")
	}
	return nil
}

// Overdue reports whether the task has a due date in the past and is
// still open.
func (t *Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
