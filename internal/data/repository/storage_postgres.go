package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"localserve/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// PostgresStorage keeps items in the storage_items table.
type PostgresStorage struct {
	db     database.PgxIface
	log    *zap.Logger
	delays []time.Duration
}

func NewPostgresStorage(db database.PgxIface, log *zap.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:     db,
		log:    log.With(zap.String("storage", "postgres")),
		delays: []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second},
	}
}

func (s *PostgresStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM storage_items WHERE key = $1`

	var value string
	err := s.withRetry(ctx, func() error {
		return s.db.QueryRow(ctx, query, key).Scan(&value)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		s.log.Error("Failed to get item", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}

	return value, true, nil
}

func (s *PostgresStorage) SetItem(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO storage_items (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	err := s.withRetry(ctx, func() error {
		_, err := s.db.Exec(ctx, query, key, value)
		return err
	})
	if err != nil {
		s.log.Error("Failed to set item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set item %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStorage) RemoveItem(ctx context.Context, key string) error {
	query := `DELETE FROM storage_items WHERE key = $1`

	err := s.withRetry(ctx, func() error {
		_, err := s.db.Exec(ctx, query, key)
		return err
	})
	if err != nil {
		s.log.Error("Failed to remove item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("remove item %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	s.db.Close()
	return nil
}

// withRetry retries serialization failures, deadlocks and dropped connections
func (s *PostgresStorage) withRetry(ctx context.Context, fn func() error) error {
	var err error

	for i := 0; i <= len(s.delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if !isRetryable(err) || i == len(s.delays) {
			break
		}

		s.log.Warn("Retrying storage operation", zap.Error(err), zap.Int("attempt", i+1))

		timer := time.NewTimer(s.delays[i])
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}

var _ Storage = (*PostgresStorage)(nil)
