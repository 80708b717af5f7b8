package entity

import "strings"

// Learner представляет запись пользователя в датасете
// (колонки user_id, preferences, user_level исходного CSV)
type Learner struct {
	UserID string `gorm:"column:user_id;primaryKey" json:"user_id"`
	// Preferences хранится как свободная строка тегов через запятую,
	// например "algebra, geometry". Это формат исходного датасета,
	// разбиение выполняется в PreferenceList.
	Preferences string `gorm:"column:preferences" json:"preferences"`
	UserLevel   int    `gorm:"column:user_level;not null;default:1" json:"user_level"`
}

// TableName определяет имя таблицы для GORM
func (Learner) TableName() string {
	return "learners"
}

// PreferenceList разбивает строку предпочтений на отдельные теги.
// Пустые элементы отбрасываются; пустая строка даёт пустой список.
func (l *Learner) PreferenceList() []string {
	if strings.TrimSpace(l.Preferences) == "" {
		return nil
	}
	parts := strings.Split(l.Preferences, ",")
	prefs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			prefs = append(prefs, p)
		}
	}
	return prefs
}

// Tier возвращает профиль пользователя из датасета
func (l *Learner) Tier() SkillTier {
	return TierFromLevel(l.UserLevel)
}

// LearnerState — запись пользователя в хранилище состояния (Redis hash).
// CurrentQuestion выставляется при каждой успешной выдаче вопроса и читается
// ровно один раз при приёме фидбека; после этого значение становится
// устаревшим, но намеренно не очищается (повторная отправка фидбека
// привязывается к тому же вопросу).
type LearnerState struct {
	UserID          string    `json:"user_id"`
	CurrentQuestion string    `json:"current_question"`
	CurrentProfile  SkillTier `json:"current_profile"`
}
