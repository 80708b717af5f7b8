package adaptive

import "github.com/yourusername/discovery-api/internal/domain/entity"

// InitialDifficulty — стартовая сложность для пользователя без истории
const InitialDifficulty = entity.DifficultyEasy

// NextDifficulty — конечный автомат прогрессии сложности.
// Чистая функция от единственного самого свежего события; серии и
// скользящие средние намеренно не учитываются.
//
// correct: easy→medium, medium→hard, hard→easy. Возврат с hard на easy —
// это цикл удержания мастерства, а не терминальное состояние.
// Любой другой исход (incorrect, skipped, неизвестное значение)
// сбрасывает на easy, чтобы пользователь восстановил уверенность.
func NextDifficulty(lastOutcome entity.Outcome, lastDifficulty entity.Difficulty) entity.Difficulty {
	if lastOutcome != entity.OutcomeCorrect {
		return entity.DifficultyEasy
	}
	switch lastDifficulty {
	case entity.DifficultyEasy:
		return entity.DifficultyMedium
	case entity.DifficultyMedium:
		return entity.DifficultyHard
	case entity.DifficultyHard:
		return entity.DifficultyEasy
	default:
		// Неизвестная сложность в истории — начинаем с начала лестницы
		return entity.DifficultyEasy
	}
}
