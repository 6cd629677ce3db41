package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_dashboard/internal/service"
)

const storeKeyPrefix = "dashboard:"

// RedisStore - долговременное локальное хранилище на Redis.
// Значения хранятся как JSON без срока жизни, последняя запись побеждает.
type RedisStore struct {
	redisClient *redis.Client
}

// NewRedisStore создает хранилище на Redis
func NewRedisStore(redisClient *redis.Client) service.Store {
	return &RedisStore{redisClient: redisClient}
}

// Get возвращает ранее сохраненное значение слота.
// Отсутствие значения не является ошибкой.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.redisClient.Get(ctx, storeKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get key %q from store: %w", key, err)
	}
	return val, true, nil
}

// Set перезаписывает значение слота атомарно с точки зрения вызывающего
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, storeKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q in store: %w", key, err)
	}
	return nil
}

// Remove удаляет слот; последующий Get вернет отсутствие значения
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, storeKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q from store: %w", key, err)
	}
	return nil
}
