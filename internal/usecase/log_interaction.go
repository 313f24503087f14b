package usecase

import (
	"context"
	"errors"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
)

// LogInteractionUseCase appends one interaction to a lead's history and
// hands it to the asynchronous processor. The history is strictly
// append-only: records here are never edited or deleted.
type LogInteractionUseCase struct {
	Leads        LeadRepositoryInterface
	Interactions InteractionRepositoryInterface
	Queue        QueueProducerInterface
}

func NewLogInteractionUseCase(
	leads LeadRepositoryInterface,
	interactions InteractionRepositoryInterface,
	producer QueueProducerInterface,
) *LogInteractionUseCase {
	return &LogInteractionUseCase{
		Leads:        leads,
		Interactions: interactions,
		Queue:        producer,
	}
}

func (uc *LogInteractionUseCase) Execute(ctx context.Context, input LogInteractionInput) (*entity.Interaction, error) {
	interaction := entity.NewInteraction(input.LeadID)
	interaction.QuickLogType = input.QuickLogType
	interaction.Outcome = input.Outcome
	interaction.FollowUpDate = input.FollowUpDate
	interaction.Notes = input.Notes
	if input.Feedback != nil {
		interaction.Feedback = &entity.Feedback{
			Perception: input.Feedback.Perception,
			Objections: input.Feedback.Objections,
		}
	}
	if input.EventDetails != nil {
		interaction.EventDetails = &entity.EventDetails{
			Type:            input.EventDetails.Type,
			DateTime:        input.EventDetails.DateTime,
			RescheduledFrom: input.EventDetails.RescheduledFrom,
		}
	}

	if err := interaction.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_INTERACTION", Message: err.Error()}
	}

	if _, err := uc.Leads.FindByID(ctx, input.LeadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found: " + input.LeadID}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if err := uc.Interactions.Append(ctx, interaction); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to append interaction: " + err.Error()}
	}

	// The record is durable at this point; a publish failure still
	// surfaces so the caller can retry the processing side.
	if err := uc.Queue.PublishInteractionLogged(ctx, queue.NewInteractionLoggedPayload(interaction)); err != nil {
		return interaction, &TechnicalError{Code: "QUEUE_ERROR", Message: "interaction stored but not queued: " + err.Error()}
	}

	return interaction, nil
}
