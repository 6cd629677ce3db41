package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// UploadStatus - состояние отложенной задачи загрузки
type UploadStatus string

const (
	UploadPending    UploadStatus = "pending"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadCancelled  UploadStatus = "cancelled"
	UploadFailed     UploadStatus = "failed"
)

// UploadJob - снимок состояния задачи загрузки
type UploadJob struct {
	ID        uuid.UUID          `json:"id"`
	Kind      models.DatasetKind `json:"kind"`
	Status    UploadStatus       `json:"status"`
	Rows      int                `json:"rows,omitempty"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type uploadJob struct {
	UploadJob
	payload []byte
	cancel  chan struct{}
}

// UploadScheduler выполняет отложенное сохранение наборов данных после
// настраиваемой задержки обработки. Задача может быть отменена до начала
// обработки; после запроса отмены никакие изменения хранилища не происходят.
type UploadScheduler struct {
	service DashboardService
	clock   clockwork.Clock
	delay   time.Duration
	logger  *logrus.Logger

	mu   sync.Mutex
	jobs map[uuid.UUID]*uploadJob
}

// NewUploadScheduler создает планировщик отложенных загрузок
func NewUploadScheduler(service DashboardService, clock clockwork.Clock, delay time.Duration, logger *logrus.Logger) *UploadScheduler {
	return &UploadScheduler{
		service: service,
		clock:   clock,
		delay:   delay,
		logger:  logger,
		jobs:    make(map[uuid.UUID]*uploadJob),
	}
}

// Schedule ставит загрузку в очередь и возвращает идентификатор задачи
func (s *UploadScheduler) Schedule(kind models.DatasetKind, payload []byte) uuid.UUID {
	job := &uploadJob{
		UploadJob: UploadJob{
			ID:        uuid.New(),
			Kind:      kind,
			Status:    UploadPending,
			CreatedAt: s.clock.Now(),
		},
		payload: payload,
		cancel:  make(chan struct{}),
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"upload_id": job.ID,
		"kind":      kind,
	}).Info("Upload job scheduled")

	go s.run(job)
	return job.ID
}

func (s *UploadScheduler) run(job *uploadJob) {
	select {
	case <-job.cancel:
		return
	case <-s.clock.After(s.delay):
	}

	// Отмена, пришедшая до этой точки, исключает любые изменения хранилища
	s.mu.Lock()
	if job.Status != UploadPending {
		s.mu.Unlock()
		return
	}
	job.Status = UploadProcessing
	s.mu.Unlock()

	rows, err := s.service.UploadDataset(context.Background(), job.Kind, bytes.NewReader(job.payload))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		job.Status = UploadFailed
		job.Error = err.Error()
		s.logger.WithField("upload_id", job.ID).WithError(err).Warn("Upload job failed")
		return
	}
	job.Status = UploadCompleted
	job.Rows = rows
	s.logger.WithFields(logrus.Fields{
		"upload_id": job.ID,
		"rows":      rows,
	}).Info("Upload job completed")
}

// Cancel прерывает ожидающую задачу. Возвращает false, если задача
// не найдена или обработка уже началась.
func (s *UploadScheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status != UploadPending {
		return false
	}
	job.Status = UploadCancelled
	close(job.cancel)

	s.logger.WithField("upload_id", id).Info("Upload job cancelled")
	return true
}

// Status возвращает снимок состояния задачи
func (s *UploadScheduler) Status(id uuid.UUID) (UploadJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return UploadJob{}, false
	}
	return job.UploadJob, true
}
