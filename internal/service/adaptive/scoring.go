package adaptive

import "github.com/yourusername/discovery-api/internal/domain/entity"

// Score возвращает числовой скор исхода для записи взаимодействия.
// Скор используется только датасетом обучения внешнего ранжировщика,
// на выбор следующего вопроса он не влияет.
//
// training: correct→3, incorrect→1, всё остальное (включая skipped)→0.
// simple:   correct→+1, incorrect→−1, всё остальное→0.
// Неизвестный режим трактуется как training.
func Score(mode string, outcome entity.Outcome) int {
	if mode == ScoringSimple {
		switch outcome {
		case entity.OutcomeCorrect:
			return 1
		case entity.OutcomeIncorrect:
			return -1
		default:
			return 0
		}
	}
	switch outcome {
	case entity.OutcomeCorrect:
		return 3
	case entity.OutcomeIncorrect:
		return 1
	default:
		return 0
	}
}
