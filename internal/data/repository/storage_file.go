package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStorage persists all items as one JSON object on disk. Every write
// rewrites the file through a temp file and rename.
type FileStorage struct {
	mu    sync.Mutex
	path  string
	items map[string]string
	log   *zap.Logger
}

func NewFileStorage(path string, log *zap.Logger) (*FileStorage, error) {
	s := &FileStorage{
		path:  path,
		items: make(map[string]string),
		log:   log.With(zap.String("storage", "file")),
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			s.log.Warn("Storage file is malformed, starting empty",
				zap.String("path", path),
				zap.Error(err))
			s.items = make(map[string]string)
		}
	}

	return s, nil
}

func (s *FileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *FileStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	s.items[key] = value

	if err := s.flush(); err != nil {
		if existed {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *FileStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.items[key]
	if !existed {
		return nil
	}
	delete(s.items, key)

	if err := s.flush(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *FileStorage) Close() error { return nil }

// flush must be called with mu held
func (s *FileStorage) flush() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}

var _ Storage = (*FileStorage)(nil)
