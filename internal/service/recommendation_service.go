package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	"github.com/yourusername/discovery-api/internal/domain/repository"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
	"github.com/yourusername/discovery-api/internal/service/adaptive"
)

// Recommendation — результат выдачи следующего вопроса
type Recommendation struct {
	QuestionID string            `json:"question_id"`
	Difficulty entity.Difficulty `json:"difficulty"`
	Tags       string            `json:"tags"`
}

// RecommendationService — оркестратор сессии: читает состояние и историю
// пользователя, вычисляет целевую сложность, выбирает вопрос и фиксирует
// его в хранилище состояния. Сам сервис между вызовами состояния не держит.
type RecommendationService struct {
	learnerRepo     repository.LearnerRepository
	questionRepo    repository.QuestionRepository
	interactionRepo repository.InteractionRepository
	stateRepo       repository.StateRepository
	selector        *adaptive.Selector
	config          *adaptive.Config
}

// NewRecommendationService создает новый сервис рекомендаций
func NewRecommendationService(
	learnerRepo repository.LearnerRepository,
	questionRepo repository.QuestionRepository,
	interactionRepo repository.InteractionRepository,
	stateRepo repository.StateRepository,
	selector *adaptive.Selector,
	config *adaptive.Config,
) *RecommendationService {
	return &RecommendationService{
		learnerRepo:     learnerRepo,
		questionRepo:    questionRepo,
		interactionRepo: interactionRepo,
		stateRepo:       stateRepo,
		selector:        selector,
		config:          config,
	}
}

// GetNextQuestion выбирает следующий вопрос для пользователя.
//
// Ошибки коллабораторов пробрасываются с сохранением вида (ErrNotFound,
// ErrDatasetUnavailable); подмена ошибок значениями по умолчанию не
// выполняется. Конкурентный вызов для одного пользователя допустим:
// current_question перезаписывается по принципу "последний победил".
func (s *RecommendationService) GetNextQuestion(ctx context.Context, userID string) (*Recommendation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user_id", apperrors.ErrValidation)
	}

	// 1. Предпочтения пользователя. Отсутствие записи или пустой список
	// предпочтений — это 404, а не тихий выбор "из всего каталога".
	learner, err := s.learnerRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch preferences for user %s: %w", userID, err)
	}
	prefs := learner.PreferenceList()
	if len(prefs) == 0 {
		return nil, fmt.Errorf("no preferences found for user %s: %w", userID, apperrors.ErrNotFound)
	}

	// 2. Целевая сложность по самому свежему событию истории.
	// При выключенном use_history работает упрощённый вариант "всегда easy".
	target, err := s.targetDifficulty(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3. Каталог и выбор кандидата
	pool, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	question, err := s.selector.Select(pool, prefs, target)
	if err != nil {
		return nil, fmt.Errorf("no questions for topics %v and difficulty %s: %w", prefs, target, err)
	}

	// 4. Фиксируем выданный вопрос в хранилище состояния.
	// Фидбек будет привязан именно к этому значению.
	if err := s.stateRepo.SetCurrentQuestion(ctx, userID, question.ItemID); err != nil {
		return nil, err
	}

	log.Printf("[Recommendation] user=%s difficulty=%s question=%s", userID, target, question.ItemID)

	return &Recommendation{
		QuestionID: question.ItemID,
		Difficulty: question.Difficulty,
		Tags:       question.Tags,
	}, nil
}

// targetDifficulty вычисляет сложность следующего вопроса.
// Без истории (или при use_history=false) — стартовая easy.
func (s *RecommendationService) targetDifficulty(ctx context.Context, userID string) (entity.Difficulty, error) {
	if !s.config.UseHistory {
		return adaptive.InitialDifficulty, nil
	}

	history, err := s.interactionRepo.GetByLearner(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(history) == 0 {
		return adaptive.InitialDifficulty, nil
	}

	last := history[len(history)-1]
	return adaptive.NextDifficulty(last.EventType, entity.ParseDifficulty(string(last.Difficulty))), nil
}
