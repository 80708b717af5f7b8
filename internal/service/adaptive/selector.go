package adaptive

import (
	"math/rand"
	"sync"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// Selector выбирает вопрос из каталога по предпочтениям и целевой сложности.
// Источник случайности инжектируется, чтобы тесты могли зафиксировать выбор.
// *rand.Rand не потокобезопасен, а запросы обрабатываются конкурентно,
// поэтому обращения к нему сериализуются мьютексом.
type Selector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector создает новый селектор с заданным источником случайности
func NewSelector(rnd *rand.Rand) *Selector {
	return &Selector{rnd: rnd}
}

// Select фильтрует пул и возвращает один случайный вопрос из подошедших.
// Кандидат: сложность равна целевой (регистронезависимо) И хотя бы одно
// предпочтение входит подстрокой в строку тегов вопроса.
// Выбор среди кандидатов равновероятный — детерминированный порядок
// приводил бы к залипанию на одних и тех же вопросах.
// Пустой отфильтрованный пул → apperrors.ErrNotFound; ослабление фильтра
// (соседняя сложность и т.п.) намеренно не выполняется.
func (s *Selector) Select(pool []entity.Question, prefs []string, target entity.Difficulty) (*entity.Question, error) {
	candidates := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if q.MatchesDifficulty(target) && q.MatchesAnyPreference(prefs) {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, apperrors.ErrNotFound
	}
	s.mu.Lock()
	idx := s.rnd.Intn(len(candidates))
	s.mu.Unlock()
	chosen := candidates[idx]
	return &chosen, nil
}
