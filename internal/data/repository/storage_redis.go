package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStorage keeps items as plain Redis strings under a key prefix.
type RedisStorage struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

func NewRedisStorage(client *redis.Client, prefix string, log *zap.Logger) *RedisStorage {
	if prefix == "" {
		prefix = "localserve"
	}
	return &RedisStorage{
		client: client,
		prefix: prefix,
		log:    log.With(zap.String("storage", "redis")),
	}
}

func (s *RedisStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.itemKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		s.log.Error("Failed to get item", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.itemKey(key), value, 0).Err(); err != nil {
		s.log.Error("Failed to set item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set item %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.itemKey(key)).Err(); err != nil {
		s.log.Error("Failed to remove item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("remove item %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) itemKey(key string) string {
	return s.prefix + ":" + key
}

var _ Storage = (*RedisStorage)(nil)
