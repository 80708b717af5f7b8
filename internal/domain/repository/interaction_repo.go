package repository

import (
	"context"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// InteractionRepository определяет методы доступа к датасету взаимодействий
// (обогащённый журнал для аналитики и обучения внешнего ранжировщика)
type InteractionRepository interface {
	Append(ctx context.Context, record *entity.Interaction) error
	// GetByLearner возвращает историю пользователя, старые записи первыми
	GetByLearner(ctx context.Context, userID string) ([]entity.Interaction, error)
	// ListAll возвращает весь датасет в порядке добавления (для экспорта)
	ListAll(ctx context.Context) ([]entity.Interaction, error)
}
