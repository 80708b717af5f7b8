package service

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев (testify mock.Mock) для точечных юнит-тестов
// ============================================================================

// MockLearnerRepo реализует repository.LearnerRepository
type MockLearnerRepo struct {
	mock.Mock
}

func (m *MockLearnerRepo) GetByID(ctx context.Context, userID string) (*entity.Learner, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Learner), args.Error(1)
}

// Остальные методы интерфейса в тестах рекомендаций не используются
func (m *MockLearnerRepo) Upsert(ctx context.Context, learner *entity.Learner) error { return nil }
func (m *MockLearnerRepo) UpsertBatch(ctx context.Context, learners []entity.Learner) error {
	args := m.Called(learners)
	return args.Error(0)
}
func (m *MockLearnerRepo) List(ctx context.Context, limit, offset int) ([]entity.Learner, error) {
	return nil, nil
}

// MockQuestionRepo реализует repository.QuestionRepository
type MockQuestionRepo struct {
	mock.Mock
}

func (m *MockQuestionRepo) GetByID(ctx context.Context, itemID string) (*entity.Question, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepo) Upsert(ctx context.Context, question *entity.Question) error { return nil }
func (m *MockQuestionRepo) UpsertBatch(ctx context.Context, questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

// MockInteractionRepo реализует repository.InteractionRepository
type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) Append(ctx context.Context, record *entity.Interaction) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockInteractionRepo) GetByLearner(ctx context.Context, userID string) ([]entity.Interaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepo) ListAll(ctx context.Context) ([]entity.Interaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Interaction), args.Error(1)
}

// MockStateRepo реализует repository.StateRepository
type MockStateRepo struct {
	mock.Mock
}

func (m *MockStateRepo) Get(ctx context.Context, userID string) (*entity.LearnerState, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LearnerState), args.Error(1)
}

func (m *MockStateRepo) SetCurrentQuestion(ctx context.Context, userID, questionID string) error {
	args := m.Called(userID, questionID)
	return args.Error(0)
}

func (m *MockStateRepo) SetProfile(ctx context.Context, userID string, tier entity.SkillTier) error {
	args := m.Called(userID, tier)
	return args.Error(0)
}

// MockFeedbackRepo реализует repository.FeedbackRepository
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Append(ctx context.Context, event *entity.FeedbackEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockFeedbackRepo) GetByLearner(ctx context.Context, userID string) ([]entity.FeedbackEvent, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FeedbackEvent), args.Error(1)
}

// ============================================================================
// In-memory фейки для сквозных сценариев (get → feedback → get)
// ============================================================================

type memStateRepo struct {
	mu     sync.Mutex
	states map[string]*entity.LearnerState
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{states: make(map[string]*entity.LearnerState)}
}

func (r *memStateRepo) Get(ctx context.Context, userID string) (*entity.LearnerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *state
	return &copied, nil
}

func (r *memStateRepo) SetCurrentQuestion(ctx context.Context, userID, questionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[userID]
	if !ok {
		state = &entity.LearnerState{UserID: userID}
		r.states[userID] = state
	}
	state.CurrentQuestion = questionID
	return nil
}

func (r *memStateRepo) SetProfile(ctx context.Context, userID string, tier entity.SkillTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[userID]
	if !ok {
		state = &entity.LearnerState{UserID: userID}
		r.states[userID] = state
	}
	state.CurrentProfile = tier
	return nil
}

type memFeedbackRepo struct {
	mu     sync.Mutex
	nextID uint
	events []entity.FeedbackEvent
}

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{}
}

func (r *memFeedbackRepo) Append(ctx context.Context, event *entity.FeedbackEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	event.ID = r.nextID
	r.events = append(r.events, *event)
	return nil
}

func (r *memFeedbackRepo) GetByLearner(ctx context.Context, userID string) ([]entity.FeedbackEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.FeedbackEvent
	for _, ev := range r.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

type memInteractionRepo struct {
	mu      sync.Mutex
	records []entity.Interaction
}

func newMemInteractionRepo() *memInteractionRepo {
	return &memInteractionRepo{}
}

func (r *memInteractionRepo) Append(ctx context.Context, record *entity.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *memInteractionRepo) GetByLearner(ctx context.Context, userID string) ([]entity.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Interaction
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memInteractionRepo) ListAll(ctx context.Context) ([]entity.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Interaction, len(r.records))
	copy(out, r.records)
	return out, nil
}

type memLearnerRepo struct {
	learners map[string]entity.Learner
}

func (r *memLearnerRepo) GetByID(ctx context.Context, userID string) (*entity.Learner, error) {
	l, ok := r.learners[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (r *memLearnerRepo) Upsert(ctx context.Context, learner *entity.Learner) error       { return nil }
func (r *memLearnerRepo) UpsertBatch(ctx context.Context, learners []entity.Learner) error { return nil }
func (r *memLearnerRepo) List(ctx context.Context, limit, offset int) ([]entity.Learner, error) {
	return nil, nil
}

type memQuestionRepo struct {
	questions []entity.Question
}

func (r *memQuestionRepo) GetByID(ctx context.Context, itemID string) (*entity.Question, error) {
	for _, q := range r.questions {
		if q.ItemID == itemID {
			copied := q
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memQuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	out := make([]entity.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}

func (r *memQuestionRepo) Upsert(ctx context.Context, question *entity.Question) error { return nil }
func (r *memQuestionRepo) UpsertBatch(ctx context.Context, questions []entity.Question) error {
	return nil
}
