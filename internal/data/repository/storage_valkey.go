package repository

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"
	"go.uber.org/zap"
)

// ValkeyStorage persists items using a Valkey-compatible database.
type ValkeyStorage struct {
	client valkey.Client
	prefix string
	log    *zap.Logger
}

func NewValkeyStorage(client valkey.Client, prefix string, log *zap.Logger) *ValkeyStorage {
	if prefix == "" {
		prefix = "localserve"
	}
	return &ValkeyStorage{
		client: client,
		prefix: prefix,
		log:    log.With(zap.String("storage", "valkey")),
	}
}

func (s *ValkeyStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	cmd := s.client.B().Get().Key(s.itemKey(key)).Build()
	value, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		s.log.Error("Failed to get item", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}
	return value, true, nil
}

func (s *ValkeyStorage) SetItem(ctx context.Context, key, value string) error {
	cmd := s.client.B().Set().Key(s.itemKey(key)).Value(value).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		s.log.Error("Failed to set item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("set item %s: %w", key, err)
	}
	return nil
}

func (s *ValkeyStorage) RemoveItem(ctx context.Context, key string) error {
	cmd := s.client.B().Del().Key(s.itemKey(key)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		s.log.Error("Failed to remove item", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("remove item %s: %w", key, err)
	}
	return nil
}

func (s *ValkeyStorage) Close() error {
	s.client.Close()
	return nil
}

func (s *ValkeyStorage) itemKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ Storage = (*ValkeyStorage)(nil)
