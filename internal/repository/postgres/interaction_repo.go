package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// InteractionRepo реализует repository.InteractionRepository.
// Заменяет исходный паттерн "прочитать весь CSV из объектного хранилища,
// дописать строки, записать файл целиком" на обычные append-вставки.
type InteractionRepo struct {
	db *gorm.DB
}

// NewInteractionRepo создает новый репозиторий датасета взаимодействий
func NewInteractionRepo(db *gorm.DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

// Append добавляет обогащённую запись в датасет
func (r *InteractionRepo) Append(ctx context.Context, record *entity.Interaction) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("%w: append interaction for %s: %v", apperrors.ErrDatasetUnavailable, record.UserID, err)
	}
	return nil
}

// GetByLearner возвращает историю пользователя, старые записи первыми
func (r *InteractionRepo) GetByLearner(ctx context.Context, userID string) ([]entity.Interaction, error) {
	var records []entity.Interaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch interactions for %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	return records, nil
}

// ListAll возвращает весь датасет в порядке добавления (экспорт для обучения)
func (r *InteractionRepo) ListAll(ctx context.Context) ([]entity.Interaction, error) {
	var records []entity.Interaction
	err := r.db.WithContext(ctx).Order("timestamp, id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list interactions: %v", apperrors.ErrDatasetUnavailable, err)
	}
	return records, nil
}
