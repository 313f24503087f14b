package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

// DeleteLeadUseCase removes a lead and cascades into everything hanging
// off it: open and completed tasks, then the interaction history, then
// the lead itself.
type DeleteLeadUseCase struct {
	Leads        LeadRepositoryInterface
	Interactions InteractionRepositoryInterface
	Tasks        TaskRepositoryInterface
}

func NewDeleteLeadUseCase(
	leads LeadRepositoryInterface,
	interactions InteractionRepositoryInterface,
	tasks TaskRepositoryInterface,
) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Leads:        leads,
		Interactions: interactions,
		Tasks:        tasks,
	}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, leadID string) error {
	if _, err := uc.Leads.FindByID(ctx, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found: " + leadID}
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	var deletedTasks, deletedInteractions int

	txn := NewTransaction()
	txn.AddOperation("delete_tasks", func(ctx context.Context) error {
		n, err := uc.Tasks.DeleteByLead(ctx, leadID)
		deletedTasks = n
		return err
	})
	txn.AddOperation("delete_interactions", func(ctx context.Context) error {
		n, err := uc.Interactions.DeleteByLead(ctx, leadID)
		deletedInteractions = n
		return err
	})
	txn.AddOperation("delete_lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, leadID)
	})

	if err := txn.Execute(ctx); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "cascade delete failed: " + err.Error()}
	}

	log.Printf("cleanup for lead %s complete: deleted %d tasks and %d interactions", leadID, deletedTasks, deletedInteractions)
	return nil
}
