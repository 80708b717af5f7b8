package dto

import "github.com/yourusername/discovery-api/internal/service"

// RecommendationResponse представляет выданный вопрос в формате ответа клиенту
// (контракт исходного API: question_id, difficulty, tags)
type RecommendationResponse struct {
	QuestionID string `json:"question_id"`
	Difficulty string `json:"difficulty"`
	Tags       string `json:"tags"`
}

// NewRecommendationResponse создает DTO для рекомендации
func NewRecommendationResponse(rec *service.Recommendation) *RecommendationResponse {
	return &RecommendationResponse{
		QuestionID: rec.QuestionID,
		Difficulty: string(rec.Difficulty),
		Tags:       rec.Tags,
	}
}

// FeedbackResponse представляет итог приёма фидбека
type FeedbackResponse struct {
	Message  string  `json:"message"`
	Accuracy float64 `json:"accuracy"`
	Profile  string  `json:"profile"`
	Warning  string  `json:"warning,omitempty"`
}

// NewFeedbackResponse создает DTO для результата фидбека
func NewFeedbackResponse(message string, result *service.FeedbackResult) *FeedbackResponse {
	return &FeedbackResponse{
		Message:  message,
		Accuracy: result.Accuracy,
		Profile:  string(result.Profile),
		Warning:  result.Warning,
	}
}

// ImportResponse представляет итог импорта датасета
type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
