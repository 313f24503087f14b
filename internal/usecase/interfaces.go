package usecase

import (
	"context"
	"time"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/integration/gemini"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
)

// LeadFilter narrows a lead listing. Zero values mean "no filter".
type LeadFilter struct {
	Statuses   []string
	HasEngaged *bool
	NamePrefix string
	Limit      int
	Offset     int
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	LeadID      string
	Completed   *bool
	OverdueAt   *time.Time // only tasks due before this instant
	DueOn       *time.Time // only tasks due on this calendar day
	Limit       int
	Offset      int
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*entity.Lead, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateSnapshot(ctx context.Context, id string, snapshot entity.CommitmentSnapshot) error
	SetStatus(ctx context.Context, id, status string, afcStep int) error
	SetAFCStep(ctx context.Context, id string, step int) error
	MarkEngaged(ctx context.Context, id string) error
	TouchLastInteraction(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type InteractionRepositoryInterface interface {
	Append(ctx context.Context, interaction *entity.Interaction) error
	ListByLead(ctx context.Context, leadID string) ([]*entity.Interaction, error)
	DeleteByLead(ctx context.Context, leadID string) (int, error)
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *entity.Task) error
	FindByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	CompleteOpenInteractive(ctx context.Context, leadID string) (int, error)
	DeletePendingFollowups(ctx context.Context, leadID string) (int, error)
	DeleteEventTasks(ctx context.Context, leadID, eventType string) (int, error)
	FindOverdueInteractive(ctx context.Context, now time.Time) ([]*entity.Task, error)
	DeleteByLead(ctx context.Context, leadID string) (int, error)
}

type SettingsRepositoryInterface interface {
	GetAppSettings(ctx context.Context) (*entity.AppSettings, error)
	SaveAppSettings(ctx context.Context, settings *entity.AppSettings) error
	GetSalesCatalog(ctx context.Context) (*entity.SalesCatalog, error)
}

type QueueProducerInterface interface {
	PublishInteractionLogged(ctx context.Context, payload queue.InteractionLoggedPayload) error
}

// LeadPotentialClassifier is the hosted-model boundary of the analysis
// flow.
type LeadPotentialClassifier interface {
	Classify(ctx context.Context, input gemini.ClassifyInput) (*gemini.ClassifyOutput, error)
}

type EmailService interface {
	SendAgendaDigest(to string, day time.Time, tasks []*entity.Task) error
}
