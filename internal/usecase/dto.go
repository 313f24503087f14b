package usecase

import (
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

type PhoneInput struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type CreateLeadInput struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phones       []PhoneInput `json:"phones"`
	Relationship string       `json:"relationship"`
	Notes        string       `json:"notes"`
}

type FeedbackInput struct {
	Perception string   `json:"perception"`
	Objections []string `json:"objections"`
}

type EventInput struct {
	Type            string     `json:"type"`
	DateTime        time.Time  `json:"date_time"`
	RescheduledFrom *time.Time `json:"rescheduled_from"`
}

type LogInteractionInput struct {
	LeadID       string         `json:"lead_id"`
	QuickLogType string         `json:"quick_log_type"`
	Feedback     *FeedbackInput `json:"feedback"`
	Outcome      string         `json:"outcome"`
	FollowUpDate *time.Time     `json:"follow_up_date"`
	EventDetails *EventInput    `json:"event_details"`
	Notes        string         `json:"notes"`
}

type ImportContactsInput struct {
	JSONData string `json:"jsonData"`
	IsNew    bool   `json:"isNew"`
}

type ImportContactsOutput struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Focus queue kinds
const (
	FocusKindLeads = "leads"
	FocusKindTasks = "tasks"
)

// Lead routines
const (
	RoutineNew      = "new"
	RoutineFollowup = "followup"
	RoutineCooling  = "cooling"
	RoutineArchived = "archived"
)

// Task routines
const (
	RoutineOpen    = "open"
	RoutineOverdue = "overdue"
	RoutineToday   = "today"
)

type FocusQueueInput struct {
	Kind    string `json:"kind"`
	Routine string `json:"routine"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

type FocusQueueOutput struct {
	Leads []*entity.Lead `json:"leads,omitempty"`
	Tasks []*entity.Task `json:"tasks,omitempty"`
}

type AnalyzeLeadInput struct {
	Insights     []string `json:"insights"`
	Traits       []string `json:"traits"`
	Notes        string   `json:"notes"`
	Interactions []string `json:"interactions"`
	CustomPrompt string   `json:"customPrompt,omitempty"`
}

type AnalyzeLeadOutput struct {
	Potential string `json:"potential"`
	Actions   string `json:"actions"`
}
