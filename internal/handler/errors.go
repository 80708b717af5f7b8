package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/discovery-api/internal/pkg/errors"
)

// respondError транслирует ошибку сервиса в HTTP-статус.
// Вид ошибки сохраняется по всей цепочке (errors.Is по sentinel-ошибкам),
// текст причины не теряется.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrNoActiveQuestion),
		errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrDatasetMalformed):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		// Истёкший таймаут внешнего вызова — это сбой хранилища
		c.JSON(http.StatusInternalServerError, gin.H{"message": "dataset store timeout"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal storage fault"})
	}
}
