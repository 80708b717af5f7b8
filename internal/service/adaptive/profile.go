package adaptive

import "github.com/yourusername/discovery-api/internal/domain/entity"

// Accuracy вычисляет долю правильных ответов по журналу фидбека.
// Ноль событий — не ошибка: точность определяется как 0.0
// (единственный задокументированный случай умолчания вместо ошибки).
func Accuracy(events []entity.FeedbackEvent) float64 {
	if len(events) == 0 {
		return 0.0
	}
	correct := 0
	for _, ev := range events {
		if ev.Feedback == entity.OutcomeCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(events))
}

// ClassifyAccuracy возвращает профиль по точности.
// Пороги проверяются по порядку, первый совпавший побеждает:
// accuracy > 0.8 → expert; accuracy > 0.5 → intermediate; иначе beginner.
// Границы строгие: ровно 0.8 → intermediate, ровно 0.5 → beginner.
func ClassifyAccuracy(accuracy float64) entity.SkillTier {
	switch {
	case accuracy > 0.8:
		return entity.TierExpert
	case accuracy > 0.5:
		return entity.TierIntermediate
	default:
		return entity.TierBeginner
	}
}

// ClassifyEvents вычисляет профиль и точность по журналу фидбека.
// Функция чистая и идемпотентная: одна и та же история даёт один и тот
// же профиль, которым вызывающая сторона перезаписывает состояние.
func ClassifyEvents(events []entity.FeedbackEvent) (entity.SkillTier, float64) {
	accuracy := Accuracy(events)
	return ClassifyAccuracy(accuracy), accuracy
}
