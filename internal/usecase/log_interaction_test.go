package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

func TestLogInteraction_QuickLog(t *testing.T) {
	leads := new(MockLeadRepository)
	interactions := new(MockInteractionRepository)
	producer := new(MockQueueProducer)
	uc := NewLogInteractionUseCase(leads, interactions, producer)

	leads.On("FindByID", mock.Anything, "lead-1").Return(activeLead(1, false), nil)
	interactions.On("Append", mock.Anything, mock.MatchedBy(func(in *entity.Interaction) bool {
		return in.LeadID == "lead-1" && in.QuickLogType == entity.QuickLogFollowup && !in.System
	})).Return(nil)
	producer.On("PublishInteractionLogged", mock.Anything, mock.Anything).Return(nil)

	interaction, err := uc.Execute(context.Background(), LogInteractionInput{
		LeadID:       "lead-1",
		QuickLogType: entity.QuickLogFollowup,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, interaction.ID)
	interactions.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestLogInteraction_RejectsMixedShapes(t *testing.T) {
	uc := NewLogInteractionUseCase(new(MockLeadRepository), new(MockInteractionRepository), new(MockQueueProducer))

	_, err := uc.Execute(context.Background(), LogInteractionInput{
		LeadID:       "lead-1",
		QuickLogType: entity.QuickLogFollowup,
		Outcome:      entity.OutcomeInfo,
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestLogInteraction_RejectsLaterWithoutDate(t *testing.T) {
	uc := NewLogInteractionUseCase(new(MockLeadRepository), new(MockInteractionRepository), new(MockQueueProducer))

	_, err := uc.Execute(context.Background(), LogInteractionInput{
		LeadID:  "lead-1",
		Outcome: entity.OutcomeLater,
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestLogInteraction_UnknownLead(t *testing.T) {
	leads := new(MockLeadRepository)
	uc := NewLogInteractionUseCase(leads, new(MockInteractionRepository), new(MockQueueProducer))

	leads.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrLeadNotFound)

	_, err := uc.Execute(context.Background(), LogInteractionInput{
		LeadID:       "missing",
		QuickLogType: entity.QuickLogUnchanged,
	})

	assert.True(t, IsDomainError(err))
}

func TestLogInteraction_PublishFailureStillReturnsInteraction(t *testing.T) {
	leads := new(MockLeadRepository)
	interactions := new(MockInteractionRepository)
	producer := new(MockQueueProducer)
	uc := NewLogInteractionUseCase(leads, interactions, producer)

	leads.On("FindByID", mock.Anything, "lead-1").Return(activeLead(1, true), nil)
	interactions.On("Append", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishInteractionLogged", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	interaction, err := uc.Execute(context.Background(), LogInteractionInput{
		LeadID:       "lead-1",
		QuickLogType: entity.QuickLogFollowup,
	})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.NotNil(t, interaction, "the durable record survives a publish failure")
}
