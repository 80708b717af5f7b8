package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/discovery-api/internal/handler/dto"
	"github.com/yourusername/discovery-api/internal/service"
	"github.com/yourusername/discovery-api/pkg/recommender"
)

// RecommendationHandler обрабатывает запросы выдачи следующего вопроса
type RecommendationHandler struct {
	recService *service.RecommendationService
	ranker     *recommender.Client
	timeout    time.Duration
}

// NewRecommendationHandler создает новый обработчик рекомендаций.
// ranker может быть nil, если внешний ранжировщик не сконфигурирован.
func NewRecommendationHandler(recService *service.RecommendationService, ranker *recommender.Client, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		ranker:     ranker,
		timeout:    timeout,
	}
}

// GetRecommendation обрабатывает GET /api/recommendation?user_id=<id>
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user_id in request"})
		return
	}

	// Все внешние вызовы операции ограничены одним таймаутом
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	rec, err := h.recService.GetNextQuestion(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecommendationResponse(rec))
}

// GetRankedRecommendations обрабатывает GET /api/recommendation/ranked.
// Альтернативный источник сигнала: список item_id от внешнего ранжировщика,
// адаптивный движок в этом пути не участвует.
func (h *RecommendationHandler) GetRankedRecommendations(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user_id in request"})
		return
	}
	if h.ranker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "ranking service is not configured"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	items, err := h.ranker.GetRankings(ctx, userID, limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "ranking service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "items": items})
}
