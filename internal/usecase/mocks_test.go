package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-cursos/internal/entity"
)

// MockCatalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListCourses(ctx context.Context) ([]entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Course), args.Error(1)
}

func (m *MockCatalog) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCatalog) ListPromotions(ctx context.Context) ([]entity.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Promotion), args.Error(1)
}

func (m *MockCatalog) ListBonuses(ctx context.Context, courseID string) ([]entity.Bonus, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bonus), args.Error(1)
}

func (m *MockCatalog) GetResource(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCatalog) UpsertLead(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockCatalog) RegisterInteraction(ctx context.Context, it *entity.Interaction) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

// MockLLM
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Reply(ctx context.Context, userText, leadContext string) (string, error) {
	args := m.Called(ctx, userText, leadContext)
	return args.String(0), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyAdvisor(ctx context.Context, n AdvisorNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// memStore: SessionStore en memoria para los tests del controller. Replica
// el contrato del FileStore: Load de un desconocido entrega un lead limpio.
type memStore struct {
	leads map[string]*entity.Lead
}

func newMemStore() *memStore {
	return &memStore{leads: make(map[string]*entity.Lead)}
}

func (s *memStore) Load(ctx context.Context, userID string) (*entity.Lead, error) {
	if lead, ok := s.leads[userID]; ok {
		return lead, nil
	}
	return entity.NewLead(userID), nil
}

func (s *memStore) Save(ctx context.Context, lead *entity.Lead) error {
	s.leads[lead.UserID] = lead
	return nil
}

func (s *memStore) Reset(ctx context.Context, userID string) error {
	delete(s.leads, userID)
	return nil
}

func newTestController() (*Controller, *memStore, *MockCatalog, *MockLLM, *MockNotifier) {
	store := newMemStore()
	catalog := new(MockCatalog)
	llm := new(MockLLM)
	notifier := new(MockNotifier)

	renderer := NewRenderer(nil)
	dispatcher := NewDispatcher(catalog, llm, renderer)
	escalator := NewEscalator(notifier)
	controller := NewController(store, catalog, renderer, dispatcher, escalator, UmbralPromoDefault)
	return controller, store, catalog, llm, notifier
}
