package repository

import (
	"context"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// LearnerRepository определяет методы доступа к датасету пользователей
type LearnerRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.Learner, error)
	Upsert(ctx context.Context, learner *entity.Learner) error
	UpsertBatch(ctx context.Context, learners []entity.Learner) error
	List(ctx context.Context, limit, offset int) ([]entity.Learner, error)
}
