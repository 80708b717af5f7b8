package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/discovery-api/internal/domain/entity"
	"github.com/yourusername/discovery-api/internal/service"
)

func newDatasetEnv() (*testEnv, *DatasetHandler) {
	env := newTestEnv()
	datasetService := service.NewDatasetService(env.learners, env.questions, env.interactions)
	return env, NewDatasetHandler(datasetService, nil, 2*time.Second)
}

func newCSVContext(path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestImportLearners_Valid(t *testing.T) {
	env, h := newDatasetEnv()

	csvBody := "user_id,preferences,user_level\n" +
		"1,\"algebra, geometry\",2\n" +
		"2,history,1\n"
	c, w := newCSVContext("/api/admin/datasets/learners/import", csvBody)
	h.ImportLearners(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.InDelta(t, 2, resp["imported"], 0.0001)

	require.Len(t, env.learners.learners, 2)
	assert.Equal(t, "algebra, geometry", env.learners.learners["1"].Preferences)
	assert.Equal(t, 2, env.learners.learners["1"].UserLevel)
}

func TestImportLearners_MissingColumn(t *testing.T) {
	_, h := newDatasetEnv()

	c, w := newCSVContext("/api/admin/datasets/learners/import", "user_id,preferences\n1,algebra\n")
	h.ImportLearners(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportQuestions_Valid(t *testing.T) {
	env, h := newDatasetEnv()

	csvBody := "ITEM_INT_ID,difficulty,tags\n" +
		"201,Easy,\"algebra, geometry\"\n" +
		"202,hard,history\n"
	c, w := newCSVContext("/api/admin/datasets/questions/import", csvBody)
	h.ImportQuestions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.questions.questions, 2)
	// Сложность нормализуется к нижнему регистру при импорте
	assert.Equal(t, entity.DifficultyEasy, env.questions.questions[0].Difficulty)
}

func TestExportInteractions_CSV(t *testing.T) {
	env, h := newDatasetEnv()
	env.interactions.records = []entity.Interaction{
		{
			ID: "a1", UserID: "7", ItemID: "201",
			EventType: entity.OutcomeCorrect, Timestamp: 1700000000,
			Difficulty: entity.DifficultyEasy, Topic: "algebra",
			UserProfile: entity.TierExpert, InteractionScore: 3,
		},
	}

	c, w := newTestGinContext(http.MethodGet, "/api/admin/datasets/interactions/export", nil)
	h.ExportInteractions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.String()
	assert.Contains(t, body, "user_id,item_id,event_type,timestamp,difficulty,topic,user_profile,interaction_score")
	assert.Contains(t, body, "7,201,correct,1700000000,easy,algebra,expert,3")
}

func TestExportInteractions_XLSX(t *testing.T) {
	env, h := newDatasetEnv()
	env.interactions.records = []entity.Interaction{
		{
			ID: "a1", UserID: "7", ItemID: "201",
			EventType: entity.OutcomeCorrect, Timestamp: 1700000000,
			Difficulty: entity.DifficultyEasy, Topic: "algebra",
			UserProfile: entity.TierExpert, InteractionScore: 3,
		},
	}

	c, w := newTestGinContext(http.MethodGet, "/api/admin/datasets/interactions/export?format=xlsx", nil)
	h.ExportInteractions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}

func TestTriggerRetrain_RankerNotConfigured(t *testing.T) {
	_, h := newDatasetEnv()

	c, w := newTestGinContext(http.MethodPost, "/api/admin/recommender/retrain", nil)
	h.TriggerRetrain(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
