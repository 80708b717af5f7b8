package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
	"github.com/yourusername/discovery-api/internal/service"
	"github.com/yourusername/discovery-api/internal/service/adaptive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов с JSON body
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// ============================================================================
// In-memory репозитории: обработчики тестируются поверх настоящих сервисов
// ============================================================================

type memLearnerRepo struct {
	learners map[string]entity.Learner
}

func (m *memLearnerRepo) GetByID(_ context.Context, userID string) (*entity.Learner, error) {
	l, ok := m.learners[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (m *memLearnerRepo) Upsert(_ context.Context, l *entity.Learner) error {
	m.learners[l.UserID] = *l
	return nil
}

func (m *memLearnerRepo) UpsertBatch(_ context.Context, ls []entity.Learner) error {
	for _, l := range ls {
		m.learners[l.UserID] = l
	}
	return nil
}

func (m *memLearnerRepo) List(_ context.Context, _, _ int) ([]entity.Learner, error) {
	out := make([]entity.Learner, 0, len(m.learners))
	for _, l := range m.learners {
		out = append(out, l)
	}
	return out, nil
}

type memQuestionRepo struct {
	questions []entity.Question
}

func (m *memQuestionRepo) GetByID(_ context.Context, itemID string) (*entity.Question, error) {
	for i := range m.questions {
		if m.questions[i].ItemID == itemID {
			return &m.questions[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memQuestionRepo) List(_ context.Context) ([]entity.Question, error) {
	return m.questions, nil
}

func (m *memQuestionRepo) Upsert(_ context.Context, q *entity.Question) error {
	m.questions = append(m.questions, *q)
	return nil
}

func (m *memQuestionRepo) UpsertBatch(_ context.Context, qs []entity.Question) error {
	m.questions = append(m.questions, qs...)
	return nil
}

type memFeedbackRepo struct {
	events []entity.FeedbackEvent
}

func (m *memFeedbackRepo) Append(_ context.Context, e *entity.FeedbackEvent) error {
	m.events = append(m.events, *e)
	return nil
}

func (m *memFeedbackRepo) GetByLearner(_ context.Context, userID string) ([]entity.FeedbackEvent, error) {
	var out []entity.FeedbackEvent
	for _, e := range m.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memInteractionRepo struct {
	records []entity.Interaction
}

func (m *memInteractionRepo) Append(_ context.Context, r *entity.Interaction) error {
	m.records = append(m.records, *r)
	return nil
}

func (m *memInteractionRepo) GetByLearner(_ context.Context, userID string) ([]entity.Interaction, error) {
	var out []entity.Interaction
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memInteractionRepo) ListAll(_ context.Context) ([]entity.Interaction, error) {
	return m.records, nil
}

type memStateRepo struct {
	states map[string]*entity.LearnerState
}

func (m *memStateRepo) Get(_ context.Context, userID string) (*entity.LearnerState, error) {
	s, ok := m.states[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memStateRepo) SetCurrentQuestion(_ context.Context, userID, questionID string) error {
	s, ok := m.states[userID]
	if !ok {
		s = &entity.LearnerState{UserID: userID}
		m.states[userID] = s
	}
	s.CurrentQuestion = questionID
	return nil
}

func (m *memStateRepo) SetProfile(_ context.Context, userID string, tier entity.SkillTier) error {
	s, ok := m.states[userID]
	if !ok {
		s = &entity.LearnerState{UserID: userID}
		m.states[userID] = s
	}
	s.CurrentProfile = tier
	return nil
}

// testEnv — полный стек обработчиков поверх in-memory репозиториев
type testEnv struct {
	learners     *memLearnerRepo
	questions    *memQuestionRepo
	feedback     *memFeedbackRepo
	interactions *memInteractionRepo
	states       *memStateRepo

	recHandler      *RecommendationHandler
	feedbackHandler *FeedbackHandler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		learners:     &memLearnerRepo{learners: make(map[string]entity.Learner)},
		questions:    &memQuestionRepo{},
		feedback:     &memFeedbackRepo{},
		interactions: &memInteractionRepo{},
		states:       &memStateRepo{states: make(map[string]*entity.LearnerState)},
	}

	cfg := adaptive.DefaultConfig()
	selector := adaptive.NewSelector(rand.New(rand.NewSource(42)))

	recService := service.NewRecommendationService(
		env.learners, env.questions, env.interactions, env.states, selector, cfg)
	feedbackService := service.NewFeedbackService(
		env.states, env.feedback, env.questions, env.interactions, cfg)

	env.recHandler = NewRecommendationHandler(recService, nil, 2*time.Second)
	env.feedbackHandler = NewFeedbackHandler(feedbackService, 2*time.Second)
	return env
}
