package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *EventWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewEventWorker(nil, logger, cfg)
}

func TestDeliverEvent_SignedPayload(t *testing.T) {
	// Подготовка: потребитель проверяет тело и подпись
	payload := `{"type":"dataset_uploaded","dataset":"statistics","row_count":2}`
	secret := "test-secret"

	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	})

	// Действие
	worker.deliverEvent(context.Background(), Event{Type: EventDatasetUploaded, Dataset: "statistics"}, payload)

	// Проверки
	assert.Equal(t, payload, string(gotBody))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestDeliverEvent_RetriesUntilSuccess(t *testing.T) {
	// Подготовка: первые две попытки отвергаются
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	worker.deliverEvent(context.Background(), Event{Type: EventSettingsSaved}, `{}`)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliverEvent_NoURLConfigured(t *testing.T) {
	worker := newTestWorker(&config.Config{
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	// Без настроенного URL доставка молча пропускается
	worker.deliverEvent(context.Background(), Event{Type: EventDatasetRemoved}, `{}`)
}

func TestGenerateHMACSHA256(t *testing.T) {
	signature := generateHMACSHA256("payload", "secret")

	require.Len(t, signature, 64)
	// Подпись детерминирована и чувствительна к секрету
	assert.Equal(t, signature, generateHMACSHA256("payload", "secret"))
	assert.NotEqual(t, signature, generateHMACSHA256("payload", "other"))
}
