package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	"github.com/yourusername/discovery-api/internal/domain/repository"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
	"github.com/yourusername/discovery-api/internal/service/adaptive"
)

// FeedbackResult — итог приёма фидбека
type FeedbackResult struct {
	QuestionID string           `json:"question_id"`
	Accuracy   float64          `json:"accuracy"`
	Profile    entity.SkillTier `json:"profile"`
	// Warning непусто при частичном успехе: фидбек записан, но
	// обогащённая запись не попала в датасет аналитики
	Warning string `json:"warning,omitempty"`
}

// FeedbackService валидирует и сохраняет фидбек пользователя по его
// текущему вопросу, пересчитывает профиль и дописывает обогащённую
// запись в датасет взаимодействий.
type FeedbackService struct {
	stateRepo       repository.StateRepository
	feedbackRepo    repository.FeedbackRepository
	questionRepo    repository.QuestionRepository
	interactionRepo repository.InteractionRepository
	config          *adaptive.Config

	now func() time.Time
}

// NewFeedbackService создает новый сервис фидбека
func NewFeedbackService(
	stateRepo repository.StateRepository,
	feedbackRepo repository.FeedbackRepository,
	questionRepo repository.QuestionRepository,
	interactionRepo repository.InteractionRepository,
	config *adaptive.Config,
) *FeedbackService {
	return &FeedbackService{
		stateRepo:       stateRepo,
		feedbackRepo:    feedbackRepo,
		questionRepo:    questionRepo,
		interactionRepo: interactionRepo,
		config:          config,
		now:             time.Now,
	}
}

// SubmitFeedback записывает один ответ пользователя.
//
// Фидбек привязывается к current_question из хранилища состояния;
// отсутствие состояния — ErrNoActiveQuestion. Дедупликация повторных
// отправок по одному вопросу намеренно не выполняется: current_question
// после записи не очищается, повторный фидбек перепривязывается к тому
// же вопросу и скорится заново.
//
// Запись в датасет взаимодействий — best-effort: её сбой не откатывает
// уже сохранённый фидбек и пересчитанный профиль, а отражается
// в Warning результата.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID, feedback string) (*FeedbackResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user_id", apperrors.ErrValidation)
	}
	if feedback == "" {
		return nil, fmt.Errorf("%w: missing feedback", apperrors.ErrValidation)
	}

	// 1. Текущий вопрос пользователя
	state, err := s.stateRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no state found for user %s: %w", userID, apperrors.ErrNoActiveQuestion)
		}
		return nil, err
	}
	if state.CurrentQuestion == "" {
		return nil, fmt.Errorf("no current question for user %s: %w", userID, apperrors.ErrNoActiveQuestion)
	}

	// 2. Событие фидбека (append-only, должно записаться)
	outcome := entity.ParseOutcome(feedback)
	event := &entity.FeedbackEvent{
		UserID:     userID,
		QuestionID: state.CurrentQuestion,
		Feedback:   outcome,
		Timestamp:  s.now().Unix(),
	}
	if err := s.feedbackRepo.Append(ctx, event); err != nil {
		return nil, err
	}

	// 3. Пересчёт профиля по всей истории фидбека и перезапись в состоянии.
	// Оценка идемпотентна: одна история — один профиль.
	events, err := s.feedbackRepo.GetByLearner(ctx, userID)
	if err != nil {
		return nil, err
	}
	tier, accuracy := adaptive.ClassifyEvents(events)
	if err := s.stateRepo.SetProfile(ctx, userID, tier); err != nil {
		return nil, err
	}

	result := &FeedbackResult{
		QuestionID: state.CurrentQuestion,
		Accuracy:   accuracy,
		Profile:    tier,
	}

	// 4. Обогащённая запись для датасета аналитики/обучения (best-effort)
	if warn := s.appendInteraction(ctx, event, tier); warn != "" {
		result.Warning = warn
	}

	log.Printf("[Feedback] user=%s question=%s feedback=%s accuracy=%.2f profile=%s",
		userID, state.CurrentQuestion, outcome, accuracy, tier)

	return result, nil
}

// appendInteraction строит и дописывает обогащённую запись взаимодействия.
// Возвращает текст предупреждения при частичном успехе.
func (s *FeedbackService) appendInteraction(ctx context.Context, event *entity.FeedbackEvent, tier entity.SkillTier) string {
	question, err := s.questionRepo.GetByID(ctx, event.QuestionID)
	if err != nil {
		log.Printf("[Feedback] метаданные вопроса %s недоступны, запись в датасет пропущена: %v",
			event.QuestionID, err)
		return "interaction record skipped: question metadata unavailable"
	}

	record := &entity.Interaction{
		ID:               uuid.NewString(),
		UserID:           event.UserID,
		ItemID:           event.QuestionID,
		EventType:        event.Feedback,
		Timestamp:        event.Timestamp,
		Difficulty:       question.Difficulty,
		Topic:            question.Tags,
		UserProfile:      tier,
		InteractionScore: adaptive.Score(s.config.Scoring, event.Feedback),
	}
	if err := s.interactionRepo.Append(ctx, record); err != nil {
		log.Printf("[Feedback] не удалось дописать запись в датасет взаимодействий: %v", err)
		return "interaction record not appended: dataset store error"
	}
	return ""
}
