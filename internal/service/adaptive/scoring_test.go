package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/discovery-api/internal/domain/entity"
)

// TestScore_TrainingMapping — маппинг датасета обучения: 3/1/0
func TestScore_TrainingMapping(t *testing.T) {
	assert.Equal(t, 3, Score(ScoringTraining, entity.OutcomeCorrect))
	assert.Equal(t, 1, Score(ScoringTraining, entity.OutcomeIncorrect))
	assert.Equal(t, 0, Score(ScoringTraining, entity.OutcomeSkipped))
	// Неизвестные исходы скорятся нулем
	assert.Equal(t, 0, Score(ScoringTraining, entity.Outcome("timeout")))
}

// TestScore_SimpleMapping — упрощённый маппинг: +1/−1/0
func TestScore_SimpleMapping(t *testing.T) {
	assert.Equal(t, 1, Score(ScoringSimple, entity.OutcomeCorrect))
	assert.Equal(t, -1, Score(ScoringSimple, entity.OutcomeIncorrect))
	assert.Equal(t, 0, Score(ScoringSimple, entity.OutcomeSkipped))
	assert.Equal(t, 0, Score(ScoringSimple, entity.Outcome("timeout")))
}

// TestScore_UnknownModeFallsBackToTraining — неизвестный режим не ломает скоринг
func TestScore_UnknownModeFallsBackToTraining(t *testing.T) {
	assert.Equal(t, 3, Score("bogus", entity.OutcomeCorrect))
}
