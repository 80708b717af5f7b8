// Package adaptive содержит ядро адаптивного подбора вопросов:
// оценку профиля по точности ответов, конечный автомат прогрессии
// сложности, скоринг взаимодействий и фильтрующий селектор.
// Все функции чистые и не ходят во внешние хранилища.
package adaptive

// Режимы скоринга взаимодействий
const (
	// ScoringTraining — маппинг датасета обучения: correct→3, incorrect→1, иначе 0
	ScoringTraining = "training"
	// ScoringSimple — упрощённый маппинг: correct→+1, incorrect→−1, иначе 0
	ScoringSimple = "simple"
)

// Config содержит настройки движка
type Config struct {
	// UseHistory — выбирать сложность по последнему событию истории.
	// false соответствует упрощённому варианту "всегда начинать с easy".
	UseHistory bool
	// Scoring — режим скоринга взаимодействий (ScoringTraining/ScoringSimple).
	// Ровно один маппинг применяется ко всем записям датасета.
	Scoring string
}

// DefaultConfig возвращает конфигурацию движка по умолчанию
func DefaultConfig() *Config {
	return &Config{
		UseHistory: true,
		Scoring:    ScoringTraining,
	}
}
