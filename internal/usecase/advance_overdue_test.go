package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

func overdueTask(id, leadID string) *entity.Task {
	due := time.Now().AddDate(0, 0, -2)
	return &entity.Task{
		ID:          id,
		LeadID:      leadID,
		LeadName:    "Asha",
		Description: "Day 3 Follow-up",
		Nature:      entity.NatureInteractive,
		DueDate:     &due,
	}
}

func TestAdvanceOverdue_CompletesAndLogsUnresponsive(t *testing.T) {
	tasks := new(MockTaskRepository)
	interactions := new(MockInteractionRepository)
	producer := new(MockQueueProducer)
	uc := NewAdvanceOverdueUseCase(tasks, interactions, producer)

	now := time.Now()
	tasks.On("FindOverdueInteractive", mock.Anything, now).Return(
		[]*entity.Task{overdueTask("task-1", "lead-1")}, nil)
	tasks.On("SetCompleted", mock.Anything, "task-1", true).Return(nil)
	interactions.On("Append", mock.Anything, mock.MatchedBy(func(in *entity.Interaction) bool {
		return in.System &&
			in.QuickLogType == entity.QuickLogUnresponsive &&
			in.LeadID == "lead-1"
	})).Return(nil)
	producer.On("PublishInteractionLogged", mock.Anything, mock.Anything).Return(nil)

	advanced, err := uc.Execute(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, advanced)
	tasks.AssertExpectations(t)
	interactions.AssertExpectations(t)
}

func TestAdvanceOverdue_SkipsFailedTasks(t *testing.T) {
	tasks := new(MockTaskRepository)
	interactions := new(MockInteractionRepository)
	producer := new(MockQueueProducer)
	uc := NewAdvanceOverdueUseCase(tasks, interactions, producer)

	now := time.Now()
	tasks.On("FindOverdueInteractive", mock.Anything, now).Return(
		[]*entity.Task{overdueTask("task-1", "lead-1"), overdueTask("task-2", "lead-2")}, nil)
	tasks.On("SetCompleted", mock.Anything, "task-1", true).Return(errors.New("row locked"))
	tasks.On("SetCompleted", mock.Anything, "task-2", true).Return(nil)
	interactions.On("Append", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishInteractionLogged", mock.Anything, mock.Anything).Return(nil)

	advanced, err := uc.Execute(context.Background(), now)

	assert.NoError(t, err, "one bad task must not abort the sweep")
	assert.Equal(t, 1, advanced)
}

func TestAdvanceOverdue_IgnoresLeadlessTasks(t *testing.T) {
	tasks := new(MockTaskRepository)
	uc := NewAdvanceOverdueUseCase(tasks, new(MockInteractionRepository), new(MockQueueProducer))

	now := time.Now()
	tasks.On("FindOverdueInteractive", mock.Anything, now).Return(
		[]*entity.Task{overdueTask("task-1", "")}, nil)

	advanced, err := uc.Execute(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 0, advanced)
	tasks.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
}
