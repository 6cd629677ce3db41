package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/analysis"
	"github.com/shenikar/wildfire_dashboard/internal/geo"
	"github.com/shenikar/wildfire_dashboard/internal/ingest"
	"github.com/shenikar/wildfire_dashboard/internal/metrics"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/settings"
	"github.com/shenikar/wildfire_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Логические слоты долговременного локального хранилища
const (
	KeyStatisticsData   = "statisticsData"
	KeyPredictionsData  = "predictionsData"
	KeyOperationalUnits = "operationalUnits"
	KeyDamageCosts      = "damageCosts"
)

// Store определяет контракт долговременного локального хранилища.
// Единственный источник истины между визитами: каждая страница читает
// состояние отсюда, а не из памяти предыдущей навигации.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// AnalysisClient определяет контракт клиента удаленного сервиса анализа
type AnalysisClient interface {
	FinalReport(ctx context.Context, req analysis.StatisticsRequest) (models.ReportResult, error)
	Predict(ctx context.Context, req analysis.PredictionsRequest) (models.PredictionsByDate, error)
}

// PredictionsView - отфильтрованные предсказания и область просмотра карты
type PredictionsView struct {
	Days     []geo.DatePredictions `json:"days"`
	Viewport *geo.Viewport         `json:"viewport,omitempty"`
}

// DashboardService определяет контракт бизнес-логики панели мониторинга
type DashboardService interface {
	UploadDataset(ctx context.Context, kind models.DatasetKind, file io.Reader) (int, error)
	GetDataset(ctx context.Context, kind models.DatasetKind) ([]models.RawRow, error)
	RemoveDataset(ctx context.Context, kind models.DatasetKind) error

	GetOperationalUnits(ctx context.Context) ([]models.OperationalUnit, bool, error)
	SaveOperationalUnits(ctx context.Context, units []models.OperationalUnit) ([]models.OperationalUnit, error)
	ResetOperationalUnits(ctx context.Context) ([]models.OperationalUnit, error)

	GetDamageCosts(ctx context.Context) (models.DamageCosts, bool, error)
	SaveDamageCosts(ctx context.Context, costs models.DamageCosts) (models.DamageCosts, error)
	ResetDamageCosts(ctx context.Context) (models.DamageCosts, error)

	GetStatisticsReport(ctx context.Context) (models.ReportResult, error)
	GetPredictions(ctx context.Context, start, end *time.Time, sel *geo.Selection) (PredictionsView, error)
}

type dashboardService struct {
	store     Store
	analysis  AnalysisClient
	publisher webhook.EventPublisher
	logger    *logrus.Logger

	// Счетчики поколений наборов данных: ответ удаленного сервиса,
	// пришедший после удаления или перезаписи набора, отбрасывается
	mu          sync.Mutex
	generations map[models.DatasetKind]uint64
}

// NewDashboardService создает сервис панели мониторинга
func NewDashboardService(store Store, client AnalysisClient, publisher webhook.EventPublisher, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		store:       store,
		analysis:    client,
		publisher:   publisher,
		logger:      logger,
		generations: make(map[models.DatasetKind]uint64),
	}
}

func datasetKey(kind models.DatasetKind) string {
	if kind == models.KindPredictions {
		return KeyPredictionsData
	}
	return KeyStatisticsData
}

func (s *dashboardService) bumpGeneration(kind models.DatasetKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[kind]++
}

func (s *dashboardService) generation(kind models.DatasetKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[kind]
}

// UploadDataset разбирает и проверяет загруженный файл, затем сохраняет
// строки в хранилище. Валидация выполняется до сохранения: неудачный
// разбор не трогает ранее сохраненный набор того же типа.
func (s *dashboardService) UploadDataset(ctx context.Context, kind models.DatasetKind, file io.Reader) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "UploadDataset",
		"kind":    kind,
	})
	log.Info("Attempting to ingest uploaded dataset")

	rows, err := ingest.ParseDataset(file, kind)
	if err != nil {
		var vErr *ingest.ValidationError
		if errors.As(err, &vErr) {
			log.WithField("missing_columns", vErr.MissingColumns).Warn("Uploaded dataset failed validation")
		} else {
			log.WithError(err).Warn("Failed to parse uploaded dataset")
		}
		metrics.RecordUpload(string(kind), 0, err)
		return 0, err
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return 0, fmt.Errorf("service: could not serialize dataset rows: %w", err)
	}

	if err := s.store.Set(ctx, datasetKey(kind), payload); err != nil {
		log.WithError(err).Error("Failed to persist dataset in store")
		return 0, fmt.Errorf("service: could not persist dataset: %w", err)
	}
	s.bumpGeneration(kind)
	metrics.RecordUpload(string(kind), len(rows), nil)

	s.publishEvent(ctx, webhook.Event{
		Type:      webhook.EventDatasetUploaded,
		Dataset:   string(kind),
		RowCount:  len(rows),
		Timestamp: time.Now().UTC(),
	})

	log.WithField("rows", len(rows)).Info("Dataset ingested successfully")
	return len(rows), nil
}

// GetDataset возвращает сохраненные строки набора данных.
// Ошибка чтения хранилища трактуется как отсутствие данных.
func (s *dashboardService) GetDataset(ctx context.Context, kind models.DatasetKind) ([]models.RawRow, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetDataset",
		"kind":    kind,
	})

	payload, ok, err := s.store.Get(ctx, datasetKey(kind))
	if err != nil {
		log.WithError(err).Warn("Failed to read dataset from store, treating as absent")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var rows []models.RawRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		log.WithError(err).Warn("Failed to decode stored dataset, treating as absent")
		return nil, nil
	}
	return rows, nil
}

// RemoveDataset удаляет сохраненный набор данных
func (s *dashboardService) RemoveDataset(ctx context.Context, kind models.DatasetKind) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RemoveDataset",
		"kind":    kind,
	})
	log.Info("Removing dataset from store")

	if err := s.store.Remove(ctx, datasetKey(kind)); err != nil {
		log.WithError(err).Error("Failed to remove dataset from store")
		return fmt.Errorf("service: could not remove dataset: %w", err)
	}
	s.bumpGeneration(kind)

	s.publishEvent(ctx, webhook.Event{
		Type:      webhook.EventDatasetRemoved,
		Dataset:   string(kind),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// GetOperationalUnits возвращает сохраненные оперативные ресурсы.
// Второй результат сообщает, сохранены ли пользовательские настройки;
// без них возвращаются пять ресурсов по умолчанию.
func (s *dashboardService) GetOperationalUnits(ctx context.Context) ([]models.OperationalUnit, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetOperationalUnits",
	})

	payload, ok, err := s.store.Get(ctx, KeyOperationalUnits)
	if err != nil {
		log.WithError(err).Warn("Failed to read operational units from store, using defaults")
		return settings.DefaultUnits(), false, nil
	}
	if !ok {
		return settings.DefaultUnits(), false, nil
	}

	var units []models.OperationalUnit
	if err := json.Unmarshal(payload, &units); err != nil {
		log.WithError(err).Warn("Failed to decode stored operational units, using defaults")
		return settings.DefaultUnits(), false, nil
	}
	return units, true, nil
}

// SaveOperationalUnits сохраняет оперативные ресурсы, предварительно
// приведя числовые поля к значению не меньше 1
func (s *dashboardService) SaveOperationalUnits(ctx context.Context, units []models.OperationalUnit) ([]models.OperationalUnit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SaveOperationalUnits",
		"count":   len(units),
	})
	log.Info("Saving operational units")

	clamped := settings.ClampUnits(units)
	payload, err := json.Marshal(clamped)
	if err != nil {
		return nil, fmt.Errorf("service: could not serialize operational units: %w", err)
	}
	if err := s.store.Set(ctx, KeyOperationalUnits, payload); err != nil {
		log.WithError(err).Error("Failed to persist operational units")
		return nil, fmt.Errorf("service: could not save operational units: %w", err)
	}

	s.publishEvent(ctx, webhook.Event{
		Type:      webhook.EventSettingsSaved,
		Dataset:   KeyOperationalUnits,
		Timestamp: time.Now().UTC(),
	})
	return clamped, nil
}

// ResetOperationalUnits удаляет сохраненную копию и возвращает значения
// по умолчанию
func (s *dashboardService) ResetOperationalUnits(ctx context.Context) ([]models.OperationalUnit, error) {
	if err := s.store.Remove(ctx, KeyOperationalUnits); err != nil {
		s.logger.WithError(err).Error("Failed to reset operational units")
		return nil, fmt.Errorf("service: could not reset operational units: %w", err)
	}
	return settings.DefaultUnits(), nil
}

// GetDamageCosts возвращает сохраненные оценки ущерба или значения
// по умолчанию
func (s *dashboardService) GetDamageCosts(ctx context.Context) (models.DamageCosts, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetDamageCosts",
	})

	payload, ok, err := s.store.Get(ctx, KeyDamageCosts)
	if err != nil {
		log.WithError(err).Warn("Failed to read damage costs from store, using defaults")
		return settings.DefaultDamageCosts(), false, nil
	}
	if !ok {
		return settings.DefaultDamageCosts(), false, nil
	}

	var costs models.DamageCosts
	if err := json.Unmarshal(payload, &costs); err != nil {
		log.WithError(err).Warn("Failed to decode stored damage costs, using defaults")
		return settings.DefaultDamageCosts(), false, nil
	}
	return costs, true, nil
}

// SaveDamageCosts сохраняет оценки ущерба с приведением к минимуму 1
func (s *dashboardService) SaveDamageCosts(ctx context.Context, costs models.DamageCosts) (models.DamageCosts, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "SaveDamageCosts",
	})
	log.Info("Saving damage costs")

	clamped := settings.ClampDamageCosts(costs)
	payload, err := json.Marshal(clamped)
	if err != nil {
		return models.DamageCosts{}, fmt.Errorf("service: could not serialize damage costs: %w", err)
	}
	if err := s.store.Set(ctx, KeyDamageCosts, payload); err != nil {
		log.WithError(err).Error("Failed to persist damage costs")
		return models.DamageCosts{}, fmt.Errorf("service: could not save damage costs: %w", err)
	}

	s.publishEvent(ctx, webhook.Event{
		Type:      webhook.EventSettingsSaved,
		Dataset:   KeyDamageCosts,
		Timestamp: time.Now().UTC(),
	})
	return clamped, nil
}

// ResetDamageCosts удаляет сохраненную копию и возвращает значения
// по умолчанию
func (s *dashboardService) ResetDamageCosts(ctx context.Context) (models.DamageCosts, error) {
	if err := s.store.Remove(ctx, KeyDamageCosts); err != nil {
		s.logger.WithError(err).Error("Failed to reset damage costs")
		return models.DamageCosts{}, fmt.Errorf("service: could not reset damage costs: %w", err)
	}
	return settings.DefaultDamageCosts(), nil
}

// GetStatisticsReport собирает запрос из локального состояния, выполняет
// обращение к сервису статистики и возвращает итоговый отчет.
// Без загруженного набора данных возвращается нулевой отчет.
func (s *dashboardService) GetStatisticsReport(ctx context.Context) (models.ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetStatisticsReport",
	})

	rows, err := s.GetDataset(ctx, models.KindStatistics)
	if err != nil || len(rows) == 0 {
		log.Info("No statistics dataset stored, returning empty report")
		return models.ReportResult{}, nil
	}

	var customUnits []models.OperationalUnit
	if units, custom, _ := s.GetOperationalUnits(ctx); custom {
		customUnits = units
	}
	var customCosts *models.DamageCosts
	if costs, custom, _ := s.GetDamageCosts(ctx); custom {
		customCosts = &costs
	}

	gen := s.generation(models.KindStatistics)
	req := analysis.BuildStatisticsRequest(rows, customUnits, customCosts)

	report, err := s.analysis.FinalReport(ctx, req)
	if err != nil {
		log.WithError(err).Error("Statistics request to analysis service failed")
		return models.ReportResult{}, fmt.Errorf("service: statistics report request failed: %w", err)
	}

	// Набор данных был удален или перезаписан, пока запрос был в полете:
	// устаревший ответ не должен попасть на экран
	if s.generation(models.KindStatistics) != gen {
		log.Warn("Discarding stale statistics report response")
		return models.ReportResult{}, nil
	}

	log.WithField("total_events", report.TotalEvents).Info("Statistics report received")
	return report, nil
}

// GetPredictions выполняет обращение к сервису предсказаний, фильтрует
// результат по диапазону дат и вычисляет область просмотра карты
func (s *dashboardService) GetPredictions(ctx context.Context, start, end *time.Time, sel *geo.Selection) (PredictionsView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetPredictions",
	})

	rows, err := s.GetDataset(ctx, models.KindPredictions)
	if err != nil || len(rows) == 0 {
		log.Info("No predictions dataset stored, returning empty view")
		return PredictionsView{Days: []geo.DatePredictions{}}, nil
	}

	gen := s.generation(models.KindPredictions)

	preds, err := s.analysis.Predict(ctx, analysis.BuildPredictionsRequest(rows))
	if err != nil {
		log.WithError(err).Error("Prediction request to analysis service failed")
		return PredictionsView{}, fmt.Errorf("service: prediction request failed: %w", err)
	}

	if s.generation(models.KindPredictions) != gen {
		log.Warn("Discarding stale predictions response")
		return PredictionsView{Days: []geo.DatePredictions{}}, nil
	}

	days := geo.FilterByDateRange(preds, start, end)
	view := PredictionsView{Days: days}
	if vp, ok := geo.ProjectViewport(days, sel); ok {
		view.Viewport = &vp
	}

	log.WithField("days", len(days)).Info("Predictions received and filtered")
	return view, nil
}

func (s *dashboardService) publishEvent(ctx context.Context, event webhook.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).Warn("Failed to publish dashboard event")
	}
}
