package repository

import (
	"context"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// FeedbackRepository определяет методы доступа к журналу фидбека.
// Журнал append-only: записи не изменяются и не удаляются.
type FeedbackRepository interface {
	Append(ctx context.Context, event *entity.FeedbackEvent) error
	// GetByLearner возвращает все события пользователя, старые первыми
	GetByLearner(ctx context.Context, userID string) ([]entity.FeedbackEvent, error)
}
