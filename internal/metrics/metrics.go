package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики панели мониторинга
var (
	// DatasetUploadsTotal считает загрузки наборов данных
	DatasetUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_dataset_uploads_total",
			Help: "Total number of dataset upload attempts",
		},
		[]string{"kind", "status"},
	)

	// DatasetRows отслеживает размер загруженных наборов данных
	DatasetRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_dataset_rows",
			Help:    "Number of rows per successfully ingested dataset",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		},
		[]string{"kind"},
	)

	// AnalysisRequestsTotal считает обращения к удаленному сервису анализа
	AnalysisRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_analysis_requests_total",
			Help: "Total number of requests to the remote analysis service",
		},
		[]string{"endpoint", "status"},
	)

	// AnalysisRequestDuration отслеживает длительность обращений к сервису анализа
	AnalysisRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_analysis_request_duration_seconds",
			Help:    "Duration of analysis service round-trips in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// RecordUpload фиксирует попытку загрузки набора данных
func RecordUpload(kind string, rows int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatasetUploadsTotal.WithLabelValues(kind, status).Inc()
	if err == nil {
		DatasetRows.WithLabelValues(kind).Observe(float64(rows))
	}
}

// RecordAnalysisRequest фиксирует обращение к сервису анализа
func RecordAnalysisRequest(endpoint string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	AnalysisRequestsTotal.WithLabelValues(endpoint, status).Inc()
	AnalysisRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
