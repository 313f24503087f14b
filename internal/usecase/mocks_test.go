package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/infra/integration/gemini"
	"github.com/najamfazal/leadtrack-solo/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateSnapshot(ctx context.Context, id string, snapshot entity.CommitmentSnapshot) error {
	args := m.Called(ctx, id, snapshot)
	return args.Error(0)
}

func (m *MockLeadRepository) SetStatus(ctx context.Context, id, status string, afcStep int) error {
	args := m.Called(ctx, id, status, afcStep)
	return args.Error(0)
}

func (m *MockLeadRepository) SetAFCStep(ctx context.Context, id string, step int) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkEngaged(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) TouchLastInteraction(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Append(ctx context.Context, interaction *entity.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.Interaction, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) DeleteByLead(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *MockTaskRepository) CompleteOpenInteractive(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) DeletePendingFollowups(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) DeleteEventTasks(ctx context.Context, leadID, eventType string) (int, error) {
	args := m.Called(ctx, leadID, eventType)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskRepository) FindOverdueInteractive(ctx context.Context, now time.Time) ([]*entity.Task, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *MockTaskRepository) DeleteByLead(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetAppSettings(ctx context.Context) (*entity.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveAppSettings(ctx context.Context, settings *entity.AppSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetSalesCatalog(ctx context.Context) (*entity.SalesCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesCatalog), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishInteractionLogged(ctx context.Context, payload queue.InteractionLoggedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, input gemini.ClassifyInput) (*gemini.ClassifyOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.ClassifyOutput), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAgendaDigest(to string, day time.Time, tasks []*entity.Task) error {
	args := m.Called(to, day, tasks)
	return args.Error(0)
}
