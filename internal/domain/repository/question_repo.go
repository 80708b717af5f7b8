package repository

import (
	"context"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// QuestionRepository определяет методы доступа к каталогу вопросов
type QuestionRepository interface {
	GetByID(ctx context.Context, itemID string) (*entity.Question, error)
	// List возвращает весь каталог. Фильтрация по предпочтениям —
	// подстрочная и регистронезависимая, поэтому выполняется селектором
	// в памяти, а не в SQL.
	List(ctx context.Context) ([]entity.Question, error)
	Upsert(ctx context.Context, question *entity.Question) error
	UpsertBatch(ctx context.Context, questions []entity.Question) error
}
