package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_dashboard/internal/service"
)

// PostgresStore - долговременное локальное хранилище на PostgreSQL.
// Используется вместо Redis, когда задан DATABASE_URL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore создает хранилище на PostgreSQL
func NewPostgresStore(db *pgxpool.Pool) service.Store {
	return &PostgresStore{db: db}
}

// Get возвращает ранее сохраненное значение слота
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE key = $1;
	`
	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get key %q from store: %w", key, err)
	}
	return value, true, nil
}

// Set перезаписывает значение слота, последняя запись побеждает
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q in store: %w", key, err)
	}
	return nil
}

// Remove удаляет слот
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_store
		WHERE key = $1;
	`
	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove key %q from store: %w", key, err)
	}
	return nil
}
