package entity

// FeedbackEvent — один ответ пользователя на выданный вопрос.
// Записи append-only: никогда не изменяются и не удаляются.
// Инвариант: QuestionID равен current_question пользователя на момент
// отправки фидбека; несоответствие — ошибка использования API, а не
// повод для тихой коррекции.
type FeedbackEvent struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     string  `gorm:"column:user_id;not null;index" json:"user_id"`
	QuestionID string  `gorm:"column:question_id;not null" json:"question_id"`
	Feedback   Outcome `gorm:"column:feedback;not null" json:"feedback"`
	// Timestamp — unix-время в секундах (формат исходной таблицы фидбека)
	Timestamp int64 `gorm:"column:timestamp;not null" json:"timestamp"`
}

// TableName определяет имя таблицы для GORM
func (FeedbackEvent) TableName() string {
	return "feedback_events"
}
