package repository

import (
	"context"
	"testing"

	"localserve/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	repo := NewSessionRepository(storage, zap.NewNop())

	session, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, session.Authenticated)

	require.NoError(t, repo.Save(ctx, entity.Session{
		Authenticated: true,
		Username:      "demo",
		Email:         "demo@localserve.com",
	}))

	flag, _, err := storage.GetItem(ctx, KeyIsAuthenticated)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)

	session, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{Authenticated: true, Username: "demo", Email: "demo@localserve.com"}, session)

	require.NoError(t, repo.Clear(ctx))

	session, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{}, session)
}
