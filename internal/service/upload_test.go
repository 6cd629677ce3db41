package service_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/shenikar/wildfire_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uploadDelay = 2 * time.Second

// newTestScheduler — планировщик с поддельными часами и мокированным сервисом
func newTestScheduler(t *testing.T) (*service.UploadScheduler, *mocks.MockDashboardService, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockDashboardService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := clockwork.NewFakeClock()
	scheduler := service.NewUploadScheduler(serviceMock, clock, uploadDelay, logger)
	return scheduler, serviceMock, clock
}

func TestUploadScheduler_CompletesAfterDelay(t *testing.T) {
	// Подготовка
	scheduler, serviceMock, clock := newTestScheduler(t)
	payload := []byte("timestamp,fire_start_time,location,severity\na,b,c,low\n")

	serviceMock.EXPECT().
		UploadDataset(gomock.Any(), models.KindStatistics, gomock.Any()).
		Return(1, nil).
		Times(1)

	// Действие
	id := scheduler.Schedule(models.KindStatistics, payload)

	// Проверки: до истечения задержки задача ожидает
	job, ok := scheduler.Status(id)
	require.True(t, ok)
	assert.Equal(t, service.UploadPending, job.Status)

	// Дожидаемся регистрации таймера и продвигаем часы
	clock.BlockUntil(1)
	clock.Advance(uploadDelay)

	require.Eventually(t, func() bool {
		job, _ := scheduler.Status(id)
		return job.Status == service.UploadCompleted
	}, time.Second, 10*time.Millisecond)

	job, _ = scheduler.Status(id)
	assert.Equal(t, 1, job.Rows)
	assert.Empty(t, job.Error)
}

func TestUploadScheduler_CancelBeforeProcessing(t *testing.T) {
	// Подготовка: сервис не должен быть вызван
	scheduler, _, clock := newTestScheduler(t)

	id := scheduler.Schedule(models.KindPredictions, []byte("data"))
	clock.BlockUntil(1)

	// Действие
	require.True(t, scheduler.Cancel(id))

	// Продвижение часов после отмены не запускает обработку
	clock.Advance(uploadDelay)
	time.Sleep(50 * time.Millisecond)

	job, ok := scheduler.Status(id)
	require.True(t, ok)
	assert.Equal(t, service.UploadCancelled, job.Status)
}

func TestUploadScheduler_CancelTwice(t *testing.T) {
	scheduler, _, clock := newTestScheduler(t)

	id := scheduler.Schedule(models.KindStatistics, []byte("data"))
	clock.BlockUntil(1)

	require.True(t, scheduler.Cancel(id))
	// Повторная отмена невозможна: задача уже не pending
	assert.False(t, scheduler.Cancel(id))
}

func TestUploadScheduler_CancelCompleted(t *testing.T) {
	scheduler, serviceMock, clock := newTestScheduler(t)

	serviceMock.EXPECT().
		UploadDataset(gomock.Any(), models.KindStatistics, gomock.Any()).
		Return(3, nil).
		Times(1)

	id := scheduler.Schedule(models.KindStatistics, []byte("data"))
	clock.BlockUntil(1)
	clock.Advance(uploadDelay)

	require.Eventually(t, func() bool {
		job, _ := scheduler.Status(id)
		return job.Status == service.UploadCompleted
	}, time.Second, 10*time.Millisecond)

	assert.False(t, scheduler.Cancel(id))
}

func TestUploadScheduler_FailedUpload(t *testing.T) {
	scheduler, serviceMock, clock := newTestScheduler(t)

	serviceMock.EXPECT().
		UploadDataset(gomock.Any(), models.KindStatistics, gomock.Any()).
		Return(0, assert.AnError).
		Times(1)

	id := scheduler.Schedule(models.KindStatistics, []byte("bad"))
	clock.BlockUntil(1)
	clock.Advance(uploadDelay)

	require.Eventually(t, func() bool {
		job, _ := scheduler.Status(id)
		return job.Status == service.UploadFailed
	}, time.Second, 10*time.Millisecond)

	job, _ := scheduler.Status(id)
	assert.NotEmpty(t, job.Error)
	assert.Zero(t, job.Rows)
}

func TestUploadScheduler_UnknownJob(t *testing.T) {
	scheduler, _, _ := newTestScheduler(t)

	_, ok := scheduler.Status(uuid.New())
	assert.False(t, ok)
	assert.False(t, scheduler.Cancel(uuid.New()))
}
