package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// FeedbackRepo реализует repository.FeedbackRepository
type FeedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo создает новый репозиторий журнала фидбека
func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

// Append добавляет событие в журнал
func (r *FeedbackRepo) Append(ctx context.Context, event *entity.FeedbackEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("%w: append feedback for %s: %v", apperrors.ErrDatasetUnavailable, event.UserID, err)
	}
	return nil
}

// GetByLearner возвращает все события пользователя, старые первыми.
// Вторичная сортировка по id стабилизирует порядок событий,
// записанных в одну и ту же секунду.
func (r *FeedbackRepo) GetByLearner(ctx context.Context, userID string) ([]entity.FeedbackEvent, error) {
	var events []entity.FeedbackEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp, id").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch feedback for %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	return events, nil
}
