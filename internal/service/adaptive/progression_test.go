package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// TestNextDifficulty_TransitionTable — полная таблица переходов.
// correct поднимает на одну ступень с циклом hard→easy;
// любой другой исход сбрасывает на easy.
func TestNextDifficulty_TransitionTable(t *testing.T) {
	tests := []struct {
		name       string
		outcome    entity.Outcome
		difficulty entity.Difficulty
		want       entity.Difficulty
	}{
		{"correct easy", entity.OutcomeCorrect, entity.DifficultyEasy, entity.DifficultyMedium},
		{"correct medium", entity.OutcomeCorrect, entity.DifficultyMedium, entity.DifficultyHard},
		{"correct hard wraps", entity.OutcomeCorrect, entity.DifficultyHard, entity.DifficultyEasy},
		{"incorrect easy", entity.OutcomeIncorrect, entity.DifficultyEasy, entity.DifficultyEasy},
		{"incorrect medium", entity.OutcomeIncorrect, entity.DifficultyMedium, entity.DifficultyEasy},
		{"incorrect hard", entity.OutcomeIncorrect, entity.DifficultyHard, entity.DifficultyEasy},
		{"skipped easy", entity.OutcomeSkipped, entity.DifficultyEasy, entity.DifficultyEasy},
		{"skipped medium", entity.OutcomeSkipped, entity.DifficultyMedium, entity.DifficultyEasy},
		{"skipped hard", entity.OutcomeSkipped, entity.DifficultyHard, entity.DifficultyEasy},
		{"unknown outcome resets", entity.Outcome("timeout"), entity.DifficultyHard, entity.DifficultyEasy},
		{"unknown difficulty restarts ladder", entity.OutcomeCorrect, entity.Difficulty("expert-only"), entity.DifficultyEasy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDifficulty(tt.outcome, tt.difficulty))
		})
	}
}

// TestInitialDifficulty — пользователь без истории начинает с easy
func TestInitialDifficulty(t *testing.T) {
	assert.Equal(t, entity.DifficultyEasy, InitialDifficulty)
}

// TestNextDifficulty_Pure — функция чистая: повторный вызов с теми же
// аргументами даёт тот же результат
func TestNextDifficulty_Pure(t *testing.T) {
	first := NextDifficulty(entity.OutcomeCorrect, entity.DifficultyMedium)
	second := NextDifficulty(entity.OutcomeCorrect, entity.DifficultyMedium)

	assert.Equal(t, first, second)
}
