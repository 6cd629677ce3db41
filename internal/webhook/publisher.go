package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	eventQueueKey = "dashboard_events"
)

// Типы событий панели мониторинга
const (
	EventDatasetUploaded = "dataset_uploaded"
	EventDatasetRemoved  = "dataset_removed"
	EventSettingsSaved   = "settings_saved"
)

// Event - событие изменения локального состояния панели мониторинга
type Event struct {
	Type      string    `json:"type"`
	Dataset   string    `json:"dataset"`
	RowCount  int       `json:"row_count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dashboard event to Redis: %w", err)
	}
	return nil
}
