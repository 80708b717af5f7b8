// Package recommender содержит клиент внешнего управляемого сервиса
// ранжирования (кампания на обученной модели). Сервис используется как
// альтернативный источник сигнала и для офлайн-обучения; адаптивный движок
// к нему не обращается.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// Config содержит настройки клиента ранжировщика
type Config struct {
	// Endpoint — базовый URL сервиса ранжирования
	Endpoint string
	// CampaignID — идентификатор кампании (обученной модели)
	CampaignID string
	// APIKey — ключ доступа, передаётся в заголовке Authorization
	APIKey string
	// Timeout — таймаут одного HTTP-вызова
	Timeout time.Duration
	// FailureThreshold — после скольких подряд сбоев размыкать цепь
	FailureThreshold uint32
}

// RankedItem — один элемент ранжированного списка
type RankedItem struct {
	ItemID string  `json:"item_id"`
	Score  float64 `json:"score"`
}

// Client — HTTP-клиент сервиса ранжирования за circuit breaker.
// Ранжировщик — внешняя зависимость с собственными деградациями;
// разомкнутая цепь быстро отдаёт ошибку вместо ожидания таймаута.
type Client struct {
	cfg     Config
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[[]RankedItem]
}

// NewClient создает новый клиент ранжировщика
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}

	settings := gobreaker.Settings{
		Name:    "recommender",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
	}

	return &Client{
		cfg:     cfg,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]RankedItem](settings),
	}
}

// GetRankings возвращает ранжированный список item_id для пользователя
func (c *Client) GetRankings(ctx context.Context, userID string, numResults int) ([]RankedItem, error) {
	return c.breaker.Execute(func() ([]RankedItem, error) {
		url := fmt.Sprintf("%s/campaigns/%s/recommendations?user_id=%s&num_results=%d",
			c.cfg.Endpoint, c.cfg.CampaignID, userID, numResults)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		c.authorize(req)

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("recommender request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("recommender returned status %d", resp.StatusCode)
		}

		var payload struct {
			Items []RankedItem `json:"items"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode recommender response: %w", err)
		}
		return payload.Items, nil
	})
}

// StartTraining запускает обучение новой версии модели кампании.
// Возвращает идентификатор джобы; отслеживание её жизненного цикла —
// забота внешнего оркестратора, не этого сервиса.
func (c *Client) StartTraining(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/campaigns/%s/retrain", c.cfg.Endpoint, c.cfg.CampaignID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(nil))
	if err != nil {
		return "", err
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("recommender training request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("recommender returned status %d", resp.StatusCode)
	}

	var payload struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode training response: %w", err)
	}
	return payload.JobID, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}
