package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/metrics"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	finalReportPath = "/api/p1/get_final_report"
	predictPath     = "/api/predict"
)

// Client - HTTP-клиент удаленного сервиса анализа (статистика и
// модель предсказания риска возгораний)
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент сервиса анализа
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FinalReport отправляет сырые данные на эндпоинт статистики и возвращает
// итоговый отчет. Отсутствующие в ответе поля остаются нулевыми.
func (c *Client) FinalReport(ctx context.Context, req StatisticsRequest) (models.ReportResult, error) {
	var report models.ReportResult
	if err := c.post(ctx, finalReportPath, req, &report); err != nil {
		return models.ReportResult{}, err
	}
	return report, nil
}

// Predict отправляет сырые данные на эндпоинт предсказаний.
// Отсутствующее поле predictions дает пустое отображение.
func (c *Client) Predict(ctx context.Context, req PredictionsRequest) (models.PredictionsByDate, error) {
	var resp struct {
		Predictions models.PredictionsByDate `json:"predictions"`
	}
	if err := c.post(ctx, predictPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Predictions == nil {
		return models.PredictionsByDate{}, nil
	}
	return resp.Predictions, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("analysis: failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("analysis: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordAnalysisRequest(path, time.Since(started), err)
	if err != nil {
		return fmt.Errorf("analysis: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(started).String(),
	}).Debug("Analysis service round-trip completed")

	// Любой не-2xx статус считается ошибкой запроса
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("analysis: service returned status %d: %s", resp.StatusCode, respBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("analysis: failed to decode response: %w", err)
	}
	return nil
}
