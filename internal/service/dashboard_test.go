package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shenikar/wildfire_dashboard/internal/analysis"
	"github.com/shenikar/wildfire_dashboard/internal/geo"
	"github.com/shenikar/wildfire_dashboard/internal/ingest"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/shenikar/wildfire_dashboard/internal/service/mocks"
	"github.com/shenikar/wildfire_dashboard/internal/webhook"
	webhook_mocks "github.com/shenikar/wildfire_dashboard/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const statisticsCSV = `timestamp,fire_start_time,location,severity
2024-06-01 10:00,2024-06-01 09:45,43.5,high
2024-06-02 11:30,2024-06-02 11:00,44.1,low
`

// newTestDashboardService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDashboardService(t *testing.T) (service.DashboardService, *mocks.MockStore, *mocks.MockAnalysisClient, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	analysisMock := mocks.NewMockAnalysisClient(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewDashboardService(storeMock, analysisMock, publisherMock, logger)
	return svc, storeMock, analysisMock, publisherMock
}

func mustRows(t *testing.T, csv string, kind models.DatasetKind) []byte {
	rows, err := ingest.ParseDataset(strings.NewReader(csv), kind)
	require.NoError(t, err)
	payload, err := json.Marshal(rows)
	require.NoError(t, err)
	return payload
}

func TestUploadDataset_Success(t *testing.T) {
	// Подготовка
	svc, storeMock, _, publisherMock := newTestDashboardService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().
		Set(ctx, service.KeyStatisticsData, gomock.Any()).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventDatasetUploaded, event.Type)
			assert.Equal(t, "statistics", event.Dataset)
			assert.Equal(t, 2, event.RowCount)
			return nil
		}).Times(1)

	// Действие
	rows, err := svc.UploadDataset(ctx, models.KindStatistics, strings.NewReader(statisticsCSV))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
}

func TestUploadDataset_ValidationError(t *testing.T) {
	// Подготовка: нет обязательных колонок, хранилище не должно быть тронуто
	svc, _, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	// Действие
	rows, err := svc.UploadDataset(ctx, models.KindStatistics, strings.NewReader("timestamp\n2024-06-01\n"))

	// Проверки
	require.Error(t, err)
	assert.Zero(t, rows)

	var vErr *ingest.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"fire_start_time", "location", "severity"}, vErr.MissingColumns)
}

func TestUploadDataset_StoreFailure(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Set(ctx, service.KeyStatisticsData, gomock.Any()).
		Return(assert.AnError).
		Times(1)

	_, err := svc.UploadDataset(ctx, models.KindStatistics, strings.NewReader(statisticsCSV))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not persist dataset")
}

func TestGetDataset_Absent(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyPredictionsData).
		Return(nil, false, nil).
		Times(1)

	rows, err := svc.GetDataset(ctx, models.KindPredictions)

	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestGetDataset_StoreErrorTreatedAsAbsent(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(nil, false, assert.AnError).
		Times(1)

	rows, err := svc.GetDataset(ctx, models.KindStatistics)

	// Ошибка чтения хранилища трактуется как отсутствие данных
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestRemoveDataset(t *testing.T) {
	svc, storeMock, _, publisherMock := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Remove(ctx, service.KeyStatisticsData).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventDatasetRemoved, event.Type)
			return nil
		}).Times(1)

	require.NoError(t, svc.RemoveDataset(ctx, models.KindStatistics))
}

func TestGetOperationalUnits_Defaults(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyOperationalUnits).
		Return(nil, false, nil).
		Times(1)

	units, custom, err := svc.GetOperationalUnits(ctx)

	require.NoError(t, err)
	assert.False(t, custom)
	require.Len(t, units, 5)
	assert.Equal(t, "Smoke Jumpers", units[0].Name)
}

func TestSaveOperationalUnits_ClampsAndPublishes(t *testing.T) {
	// Подготовка
	svc, storeMock, _, publisherMock := newTestDashboardService(t)
	ctx := context.Background()
	deployment := -5.0
	cost := 4500.0

	var persisted []byte
	storeMock.EXPECT().
		Set(ctx, service.KeyOperationalUnits, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte) error {
			persisted = value
			return nil
		}).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventSettingsSaved, event.Type)
			return nil
		}).Times(1)

	// Действие
	saved, err := svc.SaveOperationalUnits(ctx, []models.OperationalUnit{
		{Name: "Smoke Jumpers", DeploymentTime: &deployment, CostPerOperation: &cost},
	})

	// Проверки: значения ниже 1 приведены к 1 и именно они сохранены
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 1.0, *saved[0].DeploymentTime)
	assert.Equal(t, 4500.0, *saved[0].CostPerOperation)

	var stored []models.OperationalUnit
	require.NoError(t, json.Unmarshal(persisted, &stored))
	assert.Equal(t, 1.0, *stored[0].DeploymentTime)
}

func TestResetOperationalUnits(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Remove(ctx, service.KeyOperationalUnits).
		Return(nil).
		Times(1)

	units, err := svc.ResetOperationalUnits(ctx)

	require.NoError(t, err)
	assert.Len(t, units, 5)
}

func TestGetDamageCosts_StoredCustom(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()
	payload, _ := json.Marshal(models.DamageCosts{Low: 10, Medium: 20, High: 30})

	storeMock.EXPECT().
		Get(ctx, service.KeyDamageCosts).
		Return(payload, true, nil).
		Times(1)

	costs, custom, err := svc.GetDamageCosts(ctx)

	require.NoError(t, err)
	assert.True(t, custom)
	assert.Equal(t, models.DamageCosts{Low: 10, Medium: 20, High: 30}, costs)
}

func TestGetStatisticsReport_NoDataset(t *testing.T) {
	// Подготовка: набор не загружен, удаленный сервис не вызывается
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(nil, false, nil).
		Times(1)

	report, err := svc.GetStatisticsReport(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.ReportResult{}, report)
}

func TestGetStatisticsReport_Success(t *testing.T) {
	// Подготовка
	svc, storeMock, analysisMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	expected := models.ReportResult{TotalEvents: 2, FiresAddressed: 1, FiresMissed: 1}

	// Ожидания: набор есть, пользовательские настройки отсутствуют
	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(mustRows(t, statisticsCSV, models.KindStatistics), true, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyOperationalUnits).
		Return(nil, false, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyDamageCosts).
		Return(nil, false, nil).
		Times(1)
	analysisMock.EXPECT().
		FinalReport(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req analysis.StatisticsRequest) (models.ReportResult, error) {
			// Настройки по умолчанию не отправляются
			assert.Len(t, req.RawData, 2)
			assert.Nil(t, req.CustomResources)
			assert.Nil(t, req.CustomDamageCosts)
			return expected, nil
		}).Times(1)

	// Действие
	report, err := svc.GetStatisticsReport(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetStatisticsReport_CustomSettingsForwarded(t *testing.T) {
	svc, storeMock, analysisMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	unitsPayload, _ := json.Marshal([]models.OperationalUnit{{Name: "Smoke Jumpers"}})
	costsPayload, _ := json.Marshal(models.DamageCosts{Low: 1, Medium: 2, High: 3})

	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(mustRows(t, statisticsCSV, models.KindStatistics), true, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyOperationalUnits).
		Return(unitsPayload, true, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyDamageCosts).
		Return(costsPayload, true, nil).
		Times(1)
	analysisMock.EXPECT().
		FinalReport(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req analysis.StatisticsRequest) (models.ReportResult, error) {
			require.Contains(t, req.CustomResources, "smoke_jumpers")
			require.NotNil(t, req.CustomDamageCosts)
			assert.Equal(t, 3.0, req.CustomDamageCosts.High)
			return models.ReportResult{}, nil
		}).Times(1)

	_, err := svc.GetStatisticsReport(ctx)
	require.NoError(t, err)
}

func TestGetStatisticsReport_AnalysisFailure(t *testing.T) {
	svc, storeMock, analysisMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(mustRows(t, statisticsCSV, models.KindStatistics), true, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyOperationalUnits).
		Return(nil, false, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyDamageCosts).
		Return(nil, false, nil).
		Times(1)
	analysisMock.EXPECT().
		FinalReport(ctx, gomock.Any()).
		Return(models.ReportResult{}, assert.AnError).
		Times(1)

	_, err := svc.GetStatisticsReport(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "statistics report request failed")
}

func TestGetStatisticsReport_StaleResponseDiscarded(t *testing.T) {
	// Подготовка
	svc, storeMock, analysisMock, publisherMock := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyStatisticsData).
		Return(mustRows(t, statisticsCSV, models.KindStatistics), true, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyOperationalUnits).
		Return(nil, false, nil).
		Times(1)
	storeMock.EXPECT().
		Get(ctx, service.KeyDamageCosts).
		Return(nil, false, nil).
		Times(1)
	storeMock.EXPECT().
		Remove(ctx, service.KeyStatisticsData).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Ожидания: набор удаляется, пока запрос статистики в полете
	analysisMock.EXPECT().
		FinalReport(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ analysis.StatisticsRequest) (models.ReportResult, error) {
			require.NoError(t, svc.RemoveDataset(ctx, models.KindStatistics))
			return models.ReportResult{TotalEvents: 99}, nil
		}).Times(1)

	// Действие
	report, err := svc.GetStatisticsReport(ctx)

	// Проверки: устаревший ответ отброшен
	require.NoError(t, err)
	assert.Equal(t, models.ReportResult{}, report)
}

func TestGetPredictions_Success(t *testing.T) {
	// Подготовка
	svc, storeMock, analysisMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	predictionsCSV := "timestamp,temperature,humidity,wind_speed,precipitation,vegetation_index,human_activity_index,latitude,longitude\n" +
		"2024-06-01,30,40,12,0,0.7,0.3,43.5,39.7\n"

	storeMock.EXPECT().
		Get(ctx, service.KeyPredictionsData).
		Return(mustRows(t, predictionsCSV, models.KindPredictions), true, nil).
		Times(1)
	analysisMock.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionsByDate{
			"2024-06-02": {{Location: models.Location{Latitude: 44.0, Longitude: 40.0}}},
			"2024-06-01": {{Location: models.Location{Latitude: 43.5, Longitude: 39.7}}},
		}, nil).
		Times(1)

	// Действие
	view, err := svc.GetPredictions(ctx, nil, nil, nil)

	// Проверки: дни отсортированы, область карты вычислена
	require.NoError(t, err)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "2024-06-01", view.Days[0].Date)
	assert.Equal(t, "2024-06-02", view.Days[1].Date)
	require.NotNil(t, view.Viewport)
	assert.True(t, view.Viewport.Fitted)
}

func TestGetPredictions_SelectionViewport(t *testing.T) {
	svc, storeMock, analysisMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	predictionsCSV := "timestamp,temperature,humidity,wind_speed,precipitation,vegetation_index,human_activity_index,latitude,longitude\n" +
		"2024-06-01,30,40,12,0,0.7,0.3,43.5,39.7\n"

	storeMock.EXPECT().
		Get(ctx, service.KeyPredictionsData).
		Return(mustRows(t, predictionsCSV, models.KindPredictions), true, nil).
		Times(1)
	analysisMock.EXPECT().
		Predict(ctx, gomock.Any()).
		Return(models.PredictionsByDate{
			"2024-06-01": {{Location: models.Location{Latitude: 43.5, Longitude: 39.7}}},
		}, nil).
		Times(1)

	view, err := svc.GetPredictions(ctx, nil, nil, &geo.Selection{Date: "2024-06-01", Index: 0})

	require.NoError(t, err)
	require.NotNil(t, view.Viewport)
	assert.False(t, view.Viewport.Fitted)
	assert.Equal(t, models.Location{Latitude: 43.5, Longitude: 39.7}, view.Viewport.Center)
}

func TestGetPredictions_NoDataset(t *testing.T) {
	svc, storeMock, _, _ := newTestDashboardService(t)
	ctx := context.Background()

	storeMock.EXPECT().
		Get(ctx, service.KeyPredictionsData).
		Return(nil, false, nil).
		Times(1)

	view, err := svc.GetPredictions(ctx, nil, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, view.Days)
	assert.Nil(t, view.Viewport)
}
