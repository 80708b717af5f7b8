package entity

import "strings"

// Question представляет запись каталога вопросов
// (колонки ITEM_INT_ID, difficulty, tags исходного CSV).
// С точки зрения движка каталог неизменяем: записи создаются и
// обновляются только внешним обслуживанием каталога (импорт датасета).
type Question struct {
	ItemID     string     `gorm:"column:item_int_id;primaryKey" json:"question_id"`
	Difficulty Difficulty `gorm:"column:difficulty;not null" json:"difficulty"`
	// Tags — свободная строка тегов, например "algebra, geometry".
	// Сопоставление с предпочтениями — по подстроке, не по множеству.
	Tags string `gorm:"column:tags" json:"tags"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// MatchesDifficulty сравнивает сложность вопроса с целевой (регистронезависимо)
func (q *Question) MatchesDifficulty(target Difficulty) bool {
	return strings.EqualFold(string(q.Difficulty), string(target))
}

// MatchesAnyPreference сообщает, входит ли хотя бы одно из предпочтений
// подстрокой в строку тегов вопроса (регистронезависимо).
// Подстрочное сравнение терпимо к мультитеговым полям вида "algebra, geometry".
func (q *Question) MatchesAnyPreference(prefs []string) bool {
	tags := strings.ToLower(q.Tags)
	for _, pref := range prefs {
		if pref == "" {
			continue
		}
		if strings.Contains(tags, strings.ToLower(pref)) {
			return true
		}
	}
	return false
}
