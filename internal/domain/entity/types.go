package entity

import "strings"

// Difficulty — уровень сложности вопроса
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty нормализует строку сложности (регистронезависимо).
// Неизвестные значения возвращаются как есть в нижнем регистре:
// каталог вопросов может содержать уровни, о которых движок не знает,
// и фильтрация по равенству с ними всё равно корректна.
func ParseDifficulty(s string) Difficulty {
	return Difficulty(strings.ToLower(strings.TrimSpace(s)))
}

// Valid сообщает, является ли сложность одним из трёх известных уровней
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Outcome — исход ответа пользователя на вопрос
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// ParseOutcome нормализует значение фидбека к нижнему регистру.
// Неизвестные непустые значения не отбрасываются: прогрессия сложности
// трактует их как "не correct", а скоринг — как 0.
func ParseOutcome(s string) Outcome {
	return Outcome(strings.ToLower(strings.TrimSpace(s)))
}

// SkillTier — профиль пользователя, вычисленный по его точности ответов
type SkillTier string

const (
	TierBeginner     SkillTier = "beginner"
	TierIntermediate SkillTier = "intermediate"
	TierExpert       SkillTier = "expert"
)

// TierFromLevel преобразует числовой user_level датасета (1..3) в профиль.
// Значения вне диапазона трактуются как beginner.
func TierFromLevel(level int) SkillTier {
	switch level {
	case 2:
		return TierIntermediate
	case 3:
		return TierExpert
	default:
		return TierBeginner
	}
}

// Level возвращает порядковый номер профиля (1..3) для записи в датасет
func (t SkillTier) Level() int {
	switch t {
	case TierIntermediate:
		return 2
	case TierExpert:
		return 3
	default:
		return 1
	}
}
