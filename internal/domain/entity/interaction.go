package entity

// Interaction — обогащённая запись взаимодействия для датасета
// аналитики/обучения. Надмножество FeedbackEvent: дополнительно несёт
// метаданные вопроса, профиль пользователя на момент ответа и числовой
// скор исхода. Лог append-only; порядок по Timestamp значим — оценка
// профиля и прогрессия сложности читают "самую свежую" запись.
type Interaction struct {
	ID     string `gorm:"column:id;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;not null;index:idx_interactions_user_ts,priority:1" json:"user_id"`
	ItemID string `gorm:"column:item_id;not null" json:"item_id"`
	// EventType — нормализованный исход (correct/incorrect/skipped)
	EventType Outcome `gorm:"column:event_type;not null" json:"event_type"`
	Timestamp int64   `gorm:"column:timestamp;not null;index:idx_interactions_user_ts,priority:2" json:"timestamp"`

	Difficulty Difficulty `gorm:"column:difficulty;not null" json:"difficulty"`
	// Topic — строка тегов вопроса на момент ответа (единой строкой,
	// как в исходном датасете interactions)
	Topic            string    `gorm:"column:topic" json:"topic"`
	UserProfile      SkillTier `gorm:"column:user_profile;not null" json:"user_profile"`
	InteractionScore int       `gorm:"column:interaction_score;not null" json:"interaction_score"`
}

// TableName определяет имя таблицы для GORM
func (Interaction) TableName() string {
	return "interactions"
}
