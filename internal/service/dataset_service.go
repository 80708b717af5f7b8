package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	"github.com/yourusername/discovery-api/internal/domain/repository"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// DatasetService выполняет импорт и экспорт табличных датасетов.
// Заголовки CSV соответствуют исходным файлам датасетов:
// learners — user_id,preferences,user_level;
// questions — ITEM_INT_ID,difficulty,tags.
type DatasetService struct {
	learnerRepo     repository.LearnerRepository
	questionRepo    repository.QuestionRepository
	interactionRepo repository.InteractionRepository
}

// NewDatasetService создает новый сервис датасетов
func NewDatasetService(
	learnerRepo repository.LearnerRepository,
	questionRepo repository.QuestionRepository,
	interactionRepo repository.InteractionRepository,
) *DatasetService {
	return &DatasetService{
		learnerRepo:     learnerRepo,
		questionRepo:    questionRepo,
		interactionRepo: interactionRepo,
	}
}

// headerIndex строит отображение имени колонки (в нижнем регистре) в индекс
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func requireColumns(idx map[string]int, cols ...string) error {
	for _, col := range cols {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("%w: missing required column %q", apperrors.ErrDatasetMalformed, col)
		}
	}
	return nil
}

// ImportLearners читает CSV пользователей и апсертит записи пакетом.
// Возвращает количество импортированных строк.
func (s *DatasetService) ImportLearners(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: read learners header: %v", apperrors.ErrDatasetMalformed, err)
	}
	idx := headerIndex(header)
	if err := requireColumns(idx, "user_id", "preferences", "user_level"); err != nil {
		return 0, err
	}

	var learners []entity.Learner
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: learners row %d: %v", apperrors.ErrDatasetMalformed, line, err)
		}

		userID := strings.TrimSpace(row[idx["user_id"]])
		if userID == "" {
			return 0, fmt.Errorf("%w: learners row %d: empty user_id", apperrors.ErrDatasetMalformed, line)
		}
		level, err := strconv.Atoi(strings.TrimSpace(row[idx["user_level"]]))
		if err != nil {
			return 0, fmt.Errorf("%w: learners row %d: bad user_level: %v", apperrors.ErrDatasetMalformed, line, err)
		}

		learners = append(learners, entity.Learner{
			UserID:      userID,
			Preferences: strings.TrimSpace(row[idx["preferences"]]),
			UserLevel:   level,
		})
	}

	if err := s.learnerRepo.UpsertBatch(ctx, learners); err != nil {
		return 0, err
	}
	return len(learners), nil
}

// ImportQuestions читает CSV каталога вопросов и апсертит записи пакетом.
// Возвращает количество импортированных строк.
func (s *DatasetService) ImportQuestions(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: read questions header: %v", apperrors.ErrDatasetMalformed, err)
	}
	idx := headerIndex(header)
	if err := requireColumns(idx, "item_int_id", "difficulty", "tags"); err != nil {
		return 0, err
	}

	var questions []entity.Question
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: questions row %d: %v", apperrors.ErrDatasetMalformed, line, err)
		}

		itemID := strings.TrimSpace(row[idx["item_int_id"]])
		if itemID == "" {
			return 0, fmt.Errorf("%w: questions row %d: empty ITEM_INT_ID", apperrors.ErrDatasetMalformed, line)
		}
		difficulty := entity.ParseDifficulty(row[idx["difficulty"]])
		if difficulty == "" {
			return 0, fmt.Errorf("%w: questions row %d: empty difficulty", apperrors.ErrDatasetMalformed, line)
		}

		questions = append(questions, entity.Question{
			ItemID:     itemID,
			Difficulty: difficulty,
			Tags:       strings.TrimSpace(row[idx["tags"]]),
		})
	}

	if err := s.questionRepo.UpsertBatch(ctx, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}

// ExportInteractions возвращает весь датасет взаимодействий в порядке
// добавления (формат выгрузки для обучения внешнего ранжировщика)
func (s *DatasetService) ExportInteractions(ctx context.Context) ([]entity.Interaction, error) {
	return s.interactionRepo.ListAll(ctx)
}
