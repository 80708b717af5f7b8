package repository

import (
	"context"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// StateRepository определяет методы хранилища состояния пользователя
// (низколатентное keyed-хранилище: current_question + current_profile).
//
// Обновления однополевые и полагаются на атомарность хранилища по ключу.
// Сквозной транзакции между выдачей вопроса и приёмом фидбека нет: гонка
// двух конкурентных выдач для одного пользователя разрешается по принципу
// "последняя запись побеждает", и фидбек привязывается к ней. Это
// задокументированное, принятое поведение, а не ошибка.
type StateRepository interface {
	// Get возвращает состояние пользователя; apperrors.ErrNotFound, если
	// состояния ещё нет (пользователь не получал вопросов)
	Get(ctx context.Context, userID string) (*entity.LearnerState, error)
	// SetCurrentQuestion перезаписывает текущий вопрос пользователя
	SetCurrentQuestion(ctx context.Context, userID, questionID string) error
	// SetProfile перезаписывает вычисленный профиль пользователя
	SetProfile(ctx context.Context, userID string, tier entity.SkillTier) error
}
