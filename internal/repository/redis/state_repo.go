package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

const stateKeyPrefix = "learner:state:"

// StateRepo реализует repository.StateRepository поверх Redis.
// Состояние пользователя — hash с полями current_question и current_profile
// (аналог записи {user_id, current_question, current_profile} исходной
// таблицы состояния). HSET одного поля атомарен, этого достаточно:
// движок выполняет только однополевые обновления.
type StateRepo struct {
	client redis.UniversalClient
}

// NewStateRepo создает новый репозиторий состояния и возвращает ошибку при проблемах
func NewStateRepo(client redis.UniversalClient) (*StateRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for StateRepo")
	}
	return &StateRepo{client: client}, nil
}

func stateKey(userID string) string {
	return stateKeyPrefix + userID
}

// Get возвращает состояние пользователя.
// apperrors.ErrNotFound — если hash пуст (пользователю ещё не выдавали вопрос).
func (r *StateRepo) Get(ctx context.Context, userID string) (*entity.LearnerState, error) {
	fields, err := r.client.HGetAll(ctx, stateKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: get state for %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entity.LearnerState{
		UserID:          userID,
		CurrentQuestion: fields["current_question"],
		CurrentProfile:  entity.SkillTier(fields["current_profile"]),
	}, nil
}

// SetCurrentQuestion перезаписывает текущий вопрос пользователя.
// Предыдущее значение намеренно не проверяется: при конкурентных выдачах
// побеждает последняя запись.
func (r *StateRepo) SetCurrentQuestion(ctx context.Context, userID, questionID string) error {
	err := r.client.HSet(ctx, stateKey(userID), "current_question", questionID).Err()
	if err != nil {
		return fmt.Errorf("%w: set current question for %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	return nil
}

// SetProfile перезаписывает вычисленный профиль пользователя
func (r *StateRepo) SetProfile(ctx context.Context, userID string, tier entity.SkillTier) error {
	err := r.client.HSet(ctx, stateKey(userID), "current_profile", string(tier)).Err()
	if err != nil {
		return fmt.Errorf("%w: set profile for %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	return nil
}
