package usecase

import (
	"context"
	"time"
)

// SendDigestUseCase emails the day's agenda: every open task due on the
// given calendar day.
type SendDigestUseCase struct {
	Tasks TaskRepositoryInterface
	Email EmailService
	To    string
}

func NewSendDigestUseCase(tasks TaskRepositoryInterface, email EmailService, to string) *SendDigestUseCase {
	return &SendDigestUseCase{
		Tasks: tasks,
		Email: email,
		To:    to,
	}
}

func (uc *SendDigestUseCase) Execute(ctx context.Context, day time.Time) (int, error) {
	if uc.To == "" {
		return 0, &DomainError{Code: "NO_RECIPIENT", Message: "digest recipient not configured"}
	}

	open := false
	tasks, err := uc.Tasks.List(ctx, TaskFilter{Completed: &open, DueOn: &day})
	if err != nil {
		return 0, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	if err := uc.Email.SendAgendaDigest(uc.To, day, tasks); err != nil {
		return 0, &TechnicalError{Code: "MAIL_ERROR", Message: err.Error()}
	}

	return len(tasks), nil
}
