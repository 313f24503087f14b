package usecase

import (
	"context"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// CreateLeadUseCase captures a new lead and kicks off the Automated
// Follow-up Cycle: step 1 plus a day-1 interactive task.
type CreateLeadUseCase struct {
	Leads LeadRepositoryInterface
	Tasks TaskRepositoryInterface
}

func NewCreateLeadUseCase(leads LeadRepositoryInterface, tasks TaskRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Tasks: tasks}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	phones := make([]entity.Phone, 0, len(input.Phones))
	for _, p := range input.Phones {
		phones = append(phones, entity.Phone{Number: p.Number, Type: normalizePhoneType(p.Type)})
	}

	lead, err := entity.NewLead(input.Name, input.Email, phones)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}
	if input.Relationship != "" {
		lead.Relationship = input.Relationship
	}
	lead.Notes = input.Notes
	lead.AFCStep = 1

	followup, err := entity.NewTask(lead.ID, lead.Name, FollowupDescription(1), entity.NatureInteractive, timePtr(FollowupDueDate(time.Now(), 1)))
	if err != nil {
		return nil, &TechnicalError{Code: "TASK_BUILD_FAILED", Message: err.Error()}
	}

	txn := NewTransaction()
	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.Leads.Create(ctx, lead)
	})
	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, lead.ID)
	})
	txn.AddOperation("create_followup_task", func(ctx context.Context) error {
		return uc.Tasks.Create(ctx, followup)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead and follow-up task: " + err.Error(),
		}
	}

	return lead, nil
}

func normalizePhoneType(t string) string {
	switch t {
	case "call", "whatsapp", "both":
		return t
	default:
		return "both"
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
