package repository

import (
	"context"
	"fmt"

	"localserve/internal/data/entity"

	"go.uber.org/zap"
)

type SessionRepository interface {
	Get(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session entity.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	storage Storage
	log     *zap.Logger
}

func NewSessionRepository(storage Storage, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		storage: storage,
		log:     log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	flag, _, err := r.storage.GetItem(ctx, KeyIsAuthenticated)
	if err != nil {
		return nil, fmt.Errorf("get auth flag: %w", err)
	}

	username, _, err := r.storage.GetItem(ctx, KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("get username: %w", err)
	}

	email, _, err := r.storage.GetItem(ctx, KeyEmail)
	if err != nil {
		return nil, fmt.Errorf("get email: %w", err)
	}

	return &entity.Session{
		Authenticated: flag == "true",
		Username:      username,
		Email:         email,
	}, nil
}

func (r *sessionRepository) Save(ctx context.Context, session entity.Session) error {
	flag := "false"
	if session.Authenticated {
		flag = "true"
	}

	items := []struct{ key, value string }{
		{KeyIsAuthenticated, flag},
		{KeyUsername, session.Username},
		{KeyEmail, session.Email},
	}

	for _, item := range items {
		if err := r.storage.SetItem(ctx, item.key, item.value); err != nil {
			r.log.Error("Failed to save session", zap.Error(err), zap.String("key", item.key))
			return fmt.Errorf("save session: %w", err)
		}
	}

	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	for _, key := range []string{KeyIsAuthenticated, KeyUsername, KeyEmail} {
		if err := r.storage.RemoveItem(ctx, key); err != nil {
			r.log.Error("Failed to clear session", zap.Error(err), zap.String("key", key))
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}
