package usecase

import (
	"context"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
)

const (
	defaultFocusPageSize = 20
	maxFocusPageSize     = 100
)

// FocusQueueUseCase backs focus mode: a routine-filtered, stably
// ordered page of leads or tasks the client steps through one at a
// time. The client holds the offset; a page shorter than the limit
// means the queue is exhausted.
type FocusQueueUseCase struct {
	Leads LeadRepositoryInterface
	Tasks TaskRepositoryInterface

	Now func() time.Time
}

func NewFocusQueueUseCase(leads LeadRepositoryInterface, tasks TaskRepositoryInterface) *FocusQueueUseCase {
	return &FocusQueueUseCase{
		Leads: leads,
		Tasks: tasks,
		Now:   time.Now,
	}
}

func (uc *FocusQueueUseCase) Execute(ctx context.Context, input FocusQueueInput) (*FocusQueueOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultFocusPageSize
	}
	if limit > maxFocusPageSize {
		limit = maxFocusPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	switch input.Kind {
	case FocusKindLeads, "":
		filter, err := leadRoutineFilter(input.Routine)
		if err != nil {
			return nil, err
		}
		filter.Limit = limit
		filter.Offset = offset

		leads, err := uc.Leads.List(ctx, filter)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FocusQueueOutput{Leads: leads}, nil

	case FocusKindTasks:
		filter, err := uc.taskRoutineFilter(input.Routine)
		if err != nil {
			return nil, err
		}
		filter.Limit = limit
		filter.Offset = offset

		tasks, err := uc.Tasks.List(ctx, filter)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		return &FocusQueueOutput{Tasks: tasks}, nil

	default:
		return nil, &DomainError{Code: "INVALID_KIND", Message: "kind must be leads or tasks"}
	}
}

func leadRoutineFilter(routine string) (LeadFilter, error) {
	f := false
	t := true

	switch routine {
	case RoutineNew, "":
		return LeadFilter{Statuses: []string{entity.StatusActive}, HasEngaged: &f}, nil
	case RoutineFollowup:
		return LeadFilter{Statuses: []string{entity.StatusActive}, HasEngaged: &t}, nil
	case RoutineCooling:
		return LeadFilter{Statuses: []string{entity.StatusCooling, entity.StatusDormant}}, nil
	case RoutineArchived:
		return LeadFilter{Statuses: []string{entity.StatusWithdrawn, entity.StatusArchived}}, nil
	default:
		return LeadFilter{}, &DomainError{Code: "INVALID_ROUTINE", Message: "unknown lead routine: " + routine}
	}
}

func (uc *FocusQueueUseCase) taskRoutineFilter(routine string) (TaskFilter, error) {
	open := false
	now := uc.Now()

	switch routine {
	case RoutineOpen, "":
		return TaskFilter{Completed: &open}, nil
	case RoutineOverdue:
		return TaskFilter{Completed: &open, OverdueAt: &now}, nil
	case RoutineToday:
		return TaskFilter{Completed: &open, DueOn: &now}, nil
	default:
		return TaskFilter{}, &DomainError{Code: "INVALID_ROUTINE", Message: "unknown task routine: " + routine}
	}
}
