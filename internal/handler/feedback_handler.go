package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/discovery-api/internal/handler/dto"
	"github.com/yourusername/discovery-api/internal/service"
)

// FeedbackHandler обрабатывает приём фидбека по текущему вопросу
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	timeout         time.Duration
}

// NewFeedbackHandler создает новый обработчик фидбека
func NewFeedbackHandler(feedbackService *service.FeedbackService, timeout time.Duration) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		timeout:         timeout,
	}
}

// FeedbackRequest — тело POST /api/feedback
type FeedbackRequest struct {
	UserID   string `json:"user_id"`
	Feedback string `json:"feedback"`
}

// SubmitFeedback обрабатывает POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.UserID == "" || req.Feedback == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user_id or feedback in request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.feedbackService.SubmitFeedback(ctx, req.UserID, req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	message := fmt.Sprintf("Feedback '%s' stored for question %s by user %s",
		req.Feedback, result.QuestionID, req.UserID)
	c.JSON(http.StatusOK, dto.NewFeedbackResponse(message, result))
}
