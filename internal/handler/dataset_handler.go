package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	"github.com/yourusername/discovery-api/internal/handler/dto"
	"github.com/yourusername/discovery-api/internal/service"
	"github.com/yourusername/discovery-api/pkg/recommender"
)

// Заголовок датасета взаимодействий (формат выгрузки для обучения)
var interactionsHeader = []string{
	"user_id", "item_id", "event_type", "timestamp",
	"difficulty", "topic", "user_profile", "interaction_score",
}

// DatasetHandler обрабатывает админские операции над датасетами
type DatasetHandler struct {
	datasetService *service.DatasetService
	ranker         *recommender.Client
	timeout        time.Duration
}

// NewDatasetHandler создает новый обработчик датасетов
func NewDatasetHandler(datasetService *service.DatasetService, ranker *recommender.Client, timeout time.Duration) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
		ranker:         ranker,
		timeout:        timeout,
	}
}

// ImportLearners обрабатывает POST /api/admin/datasets/learners/import.
// Тело запроса — CSV с заголовком user_id,preferences,user_level.
func (h *DatasetHandler) ImportLearners(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	count, err := h.datasetService.ImportLearners(ctx, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Message:  "learners dataset imported",
		Imported: count,
	})
}

// ImportQuestions обрабатывает POST /api/admin/datasets/questions/import.
// Тело запроса — CSV с заголовком ITEM_INT_ID,difficulty,tags.
func (h *DatasetHandler) ImportQuestions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	count, err := h.datasetService.ImportQuestions(ctx, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Message:  "questions dataset imported",
		Imported: count,
	})
}

// ExportInteractions обрабатывает GET /api/admin/datasets/interactions/export.
// format=csv (по умолчанию) или format=xlsx.
func (h *DatasetHandler) ExportInteractions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	records, err := h.datasetService.ExportInteractions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("interactions_%s", time.Now().Format("2006-01-02"))
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, records, filename)
	default:
		h.exportCSV(c, records, filename)
	}
}

// exportCSV выгружает датасет взаимодействий в CSV
func (h *DatasetHandler) exportCSV(c *gin.Context, records []entity.Interaction, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(interactionsHeader)
	for _, r := range records {
		writer.Write([]string{
			sanitizeForExcel(r.UserID),
			sanitizeForExcel(r.ItemID),
			string(r.EventType),
			strconv.FormatInt(r.Timestamp, 10),
			string(r.Difficulty),
			sanitizeForExcel(r.Topic),
			string(r.UserProfile),
			strconv.Itoa(r.InteractionScore),
		})
	}
}

// exportXLSX выгружает датасет взаимодействий в Excel через StreamWriter
func (h *DatasetHandler) exportXLSX(c *gin.Context, records []entity.Interaction, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Interactions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[DatasetHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel file"})
		return
	}

	header := make([]interface{}, len(interactionsHeader))
	for i, name := range interactionsHeader {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		log.Printf("[DatasetHandler] Ошибка записи заголовка: %v", err)
	}

	for i, r := range records {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			sanitizeForExcel(r.UserID),
			sanitizeForExcel(r.ItemID),
			string(r.EventType),
			r.Timestamp,
			string(r.Difficulty),
			sanitizeForExcel(r.Topic),
			string(r.UserProfile),
			r.InteractionScore,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[DatasetHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[DatasetHandler] Ошибка при Flush: %v", err)
	}
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[DatasetHandler] Ошибка записи Excel в response: %v", err)
	}
}

// TriggerRetrain обрабатывает POST /api/admin/recommender/retrain.
// Запускает одно обучение на внешнем ранжировщике; жизненным циклом
// джобы сервис не управляет.
func (h *DatasetHandler) TriggerRetrain(c *gin.Context) {
	if h.ranker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "ranking service is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	jobID, err := h.ranker.StartTraining(ctx)
	if err != nil {
		log.Printf("[DatasetHandler] Не удалось запустить обучение ранжировщика: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "failed to start training job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "training job started", "job_id": jobID})
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
