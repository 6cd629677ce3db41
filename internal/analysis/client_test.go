package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func ptr(v float64) *float64 { return &v }

func sampleRows() []models.RawRow {
	return []models.RawRow{
		{"timestamp": models.String("2024-06-01"), "severity": models.String("high")},
	}
}

func TestBuildStatisticsRequest_DefaultsOmitted(t *testing.T) {
	// Действие: пользовательские настройки не сохранены
	req := BuildStatisticsRequest(sampleRows(), nil, nil)

	// Проверки: необязательные поля полностью опускаются
	payload, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "customResources")
	assert.NotContains(t, string(payload), "customDamageCosts")
	assert.Contains(t, string(payload), "rawData")
}

func TestBuildStatisticsRequest_CustomSettings(t *testing.T) {
	units := []models.OperationalUnit{
		{Name: "Smoke Jumpers", DeploymentTime: ptr(25), CostPerOperation: ptr(4500), UnitsAvailable: ptr(6)},
	}
	costs := &models.DamageCosts{Low: 1, Medium: 2, High: 3}

	req := BuildStatisticsRequest(sampleRows(), units, costs)

	require.Contains(t, req.CustomResources, "smoke_jumpers")
	assert.Equal(t, 4500.0, req.CustomResources["smoke_jumpers"].Cost)
	assert.Equal(t, costs, req.CustomDamageCosts)
}

func TestClient_FinalReport(t *testing.T) {
	// Подготовка: поддельный сервис анализа
	var gotPath string
	var gotBody StatisticsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(models.ReportResult{
			TotalEvents:    12,
			FiresAddressed: 9,
			FiresMissed:    3,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, newTestLogger())

	// Действие
	report, err := client.FinalReport(context.Background(), BuildStatisticsRequest(sampleRows(), nil, nil))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "/api/p1/get_final_report", gotPath)
	assert.Len(t, gotBody.RawData, 1)
	assert.Equal(t, 12.0, report.TotalEvents)
	assert.Equal(t, 9.0, report.FiresAddressed)
}

func TestClient_FinalReport_PartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_events": 5}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, newTestLogger())

	report, err := client.FinalReport(context.Background(), StatisticsRequest{RawData: sampleRows()})

	require.NoError(t, err)
	// Отсутствующие поля остаются нулевыми
	assert.Equal(t, 5.0, report.TotalEvents)
	assert.Equal(t, 0.0, report.DamageCosts)
	assert.Equal(t, models.SeverityReport{}, report.SeverityReport)
}

func TestClient_FinalReport_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, newTestLogger())

	_, err := client.FinalReport(context.Background(), StatisticsRequest{RawData: sampleRows()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predict", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"predictions": map[string][]models.PredictionEntry{
				"2024-06-01": {
					{
						Time:     "14:00",
						Location: models.Location{Latitude: 43.5, Longitude: 39.7},
						RiskFactors: models.RiskFactors{
							FireProbability: 0.82,
							Temperature:     34,
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, newTestLogger())

	preds, err := client.Predict(context.Background(), BuildPredictionsRequest(sampleRows()))

	require.NoError(t, err)
	require.Contains(t, preds, "2024-06-01")
	require.Len(t, preds["2024-06-01"], 1)
	assert.Equal(t, 0.82, preds["2024-06-01"][0].RiskFactors.FireProbability)
}

func TestClient_Predict_MissingPredictionsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, newTestLogger())

	preds, err := client.Predict(context.Background(), BuildPredictionsRequest(sampleRows()))

	require.NoError(t, err)
	// Отсутствующее поле дает пустое отображение, а не nil
	assert.NotNil(t, preds)
	assert.Empty(t, preds)
}

func TestClient_Predict_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, newTestLogger())

	_, err := client.Predict(context.Background(), BuildPredictionsRequest(sampleRows()))

	require.Error(t, err)
}
