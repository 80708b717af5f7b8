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

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий каталога вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetByID возвращает вопрос по ITEM_INT_ID
func (r *QuestionRepo) GetByID(ctx context.Context, itemID string) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, "item_int_id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetch question %s: %v", apperrors.ErrDatasetUnavailable, itemID, err)
	}
	return &question, nil
}

// List возвращает весь каталог вопросов
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("item_int_id").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", apperrors.ErrDatasetUnavailable, err)
	}
	return questions, nil
}

// Upsert создает или обновляет запись каталога
func (r *QuestionRepo) Upsert(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_int_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"difficulty", "tags"}),
		}).
		Create(question).Error
	if err != nil {
		return fmt.Errorf("%w: upsert question %s: %v", apperrors.ErrDatasetUnavailable, question.ItemID, err)
	}
	return nil
}

// UpsertBatch создает или обновляет пакет вопросов одной транзакцией
func (r *QuestionRepo) UpsertBatch(ctx context.Context, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_int_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"difficulty", "tags"}),
		}).Create(&questions).Error
	})
	if err != nil {
		return fmt.Errorf("%w: upsert %d questions: %v", apperrors.ErrDatasetUnavailable, len(questions), err)
	}
	return nil
}
