package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
)

// AdvanceOverdueUseCase sweeps overdue interactive tasks. An overdue
// follow-up means the attempt was made and the lead never answered, so
// each one is completed and a system Unresponsive interaction is logged
// to push the AFC forward through the normal pipeline.
type AdvanceOverdueUseCase struct {
	Tasks        TaskRepositoryInterface
	Interactions InteractionRepositoryInterface
	Queue        QueueProducerInterface
}

func NewAdvanceOverdueUseCase(
	tasks TaskRepositoryInterface,
	interactions InteractionRepositoryInterface,
	producer QueueProducerInterface,
) *AdvanceOverdueUseCase {
	return &AdvanceOverdueUseCase{
		Tasks:        tasks,
		Interactions: interactions,
		Queue:        producer,
	}
}

func (uc *AdvanceOverdueUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	overdue, err := uc.Tasks.FindOverdueInteractive(ctx, now)
	if err != nil {
		return 0, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	advanced := 0
	for _, task := range overdue {
		if task.LeadID == "" {
			continue
		}

		if err := uc.Tasks.SetCompleted(ctx, task.ID, true); err != nil {
			log.Printf("failed to complete overdue task %s: %v", task.ID, err)
			continue
		}

		interaction := entity.NewInteraction(task.LeadID)
		interaction.QuickLogType = entity.QuickLogUnresponsive
		interaction.Notes = fmt.Sprintf("System generated: No response to overdue task '%s'.", task.Description)
		interaction.System = true

		if err := uc.Interactions.Append(ctx, interaction); err != nil {
			log.Printf("failed to log Unresponsive for lead %s: %v", task.LeadID, err)
			continue
		}
		if err := uc.Queue.PublishInteractionLogged(ctx, queue.NewInteractionLoggedPayload(interaction)); err != nil {
			log.Printf("failed to queue Unresponsive for lead %s: %v", task.LeadID, err)
			continue
		}

		advanced++
	}

	return advanced, nil
}
