package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
)

// CompleteTaskUseCase toggles a task's completion. Finishing a
// procedural task that came from an Info outcome (i.e. not one of the
// scheduled follow-up/confirm/remind tasks) means the lead got what it
// was waiting for, so a system Followup interaction restarts the AFC.
type CompleteTaskUseCase struct {
	Tasks        TaskRepositoryInterface
	Interactions InteractionRepositoryInterface
	Queue        QueueProducerInterface
}

func NewCompleteTaskUseCase(
	tasks TaskRepositoryInterface,
	interactions InteractionRepositoryInterface,
	producer QueueProducerInterface,
) *CompleteTaskUseCase {
	return &CompleteTaskUseCase{
		Tasks:        tasks,
		Interactions: interactions,
		Queue:        producer,
	}
}

func (uc *CompleteTaskUseCase) Execute(ctx context.Context, taskID string, completed bool) (*entity.Task, error) {
	task, err := uc.Tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			return nil, &DomainError{Code: "TASK_NOT_FOUND", Message: "task not found: " + taskID}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if task.Completed == completed {
		return task, nil
	}

	if err := uc.Tasks.SetCompleted(ctx, taskID, completed); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	task.Completed = completed

	if completed && task.Nature == entity.NatureProcedural && task.LeadID != "" &&
		!IsFollowupTask(task.Description) && !IsEventTask(task.Description) {
		interaction := entity.NewInteraction(task.LeadID)
		interaction.QuickLogType = entity.QuickLogFollowup
		interaction.Notes = fmt.Sprintf("System generated: AFC reset after completion of task '%s'.", task.Description)
		interaction.System = true

		if err := uc.Interactions.Append(ctx, interaction); err != nil {
			return task, &TechnicalError{Code: "DATABASE_ERROR", Message: "task completed but AFC reset log failed: " + err.Error()}
		}
		if err := uc.Queue.PublishInteractionLogged(ctx, queue.NewInteractionLoggedPayload(interaction)); err != nil {
			return task, &TechnicalError{Code: "QUEUE_ERROR", Message: "task completed but AFC reset not queued: " + err.Error()}
		}
	}

	return task, nil
}
