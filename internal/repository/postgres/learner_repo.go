package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// LearnerRepo реализует repository.LearnerRepository
type LearnerRepo struct {
	db *gorm.DB
}

// NewLearnerRepo создает новый репозиторий пользователей
func NewLearnerRepo(db *gorm.DB) *LearnerRepo {
	return &LearnerRepo{db: db}
}

// GetByID возвращает пользователя по user_id
func (r *LearnerRepo) GetByID(ctx context.Context, userID string) (*entity.Learner, error) {
	var learner entity.Learner
	err := r.db.WithContext(ctx).First(&learner, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetch learner %s: %v", apperrors.ErrDatasetUnavailable, userID, err)
	}
	return &learner, nil
}

// Upsert создает или обновляет запись пользователя
func (r *LearnerRepo) Upsert(ctx context.Context, learner *entity.Learner) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferences", "user_level"}),
		}).
		Create(learner).Error
	if err != nil {
		return fmt.Errorf("%w: upsert learner %s: %v", apperrors.ErrDatasetUnavailable, learner.UserID, err)
	}
	return nil
}

// UpsertBatch создает или обновляет пакет пользователей одной транзакцией
func (r *LearnerRepo) UpsertBatch(ctx context.Context, learners []entity.Learner) error {
	if len(learners) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferences", "user_level"}),
		}).Create(&learners).Error
	})
	if err != nil {
		return fmt.Errorf("%w: upsert %d learners: %v", apperrors.ErrDatasetUnavailable, len(learners), err)
	}
	return nil
}

// List возвращает пользователей с пагинацией
func (r *LearnerRepo) List(ctx context.Context, limit, offset int) ([]entity.Learner, error) {
	var learners []entity.Learner
	err := r.db.WithContext(ctx).Order("user_id").Limit(limit).Offset(offset).Find(&learners).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list learners: %v", apperrors.ErrDatasetUnavailable, err)
	}
	return learners, nil
}
