package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"localserve/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStorage struct {
	*MemoryStorage
	err error
}

func (s *failingStorage) SetItem(context.Context, string, string) error {
	return s.err
}

func TestBookingRepository_LoadEmpty(t *testing.T) {
	repo := NewBookingRepository(NewMemoryStorage(), zap.NewNop())

	bookings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, bookings)
}

func TestBookingRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	repo := NewBookingRepository(storage, zap.NewNop())

	rating := 4.8
	want := []entity.Booking{
		{
			ID:          "b2",
			Service:     "Carpenter",
			Provider:    "Rajesh Kumar",
			Date:        "2025-01-15, 10:00 AM",
			Time:        "10:00 AM",
			Status:      entity.BookingStatusPending,
			Price:       "₹500/hour",
			Rating:      &rating,
			Location:    "1.2 km",
			ServiceType: "Carpenter",
			Distance:    "1.2 km",
			CreatedAt:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "b1",
			Service:   "Plumber",
			Provider:  "Sunita Devi",
			Status:    entity.BookingStatusCompleted,
			Price:     "₹250/hour",
			CreatedAt: time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(ctx, want))

	raw, ok, err := storage.GetItem(ctx, KeyBookings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"providerPhoto"`)
	assert.Contains(t, raw, `"serviceType":"Carpenter"`)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookingRepository_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	repo := NewBookingRepository(storage, zap.NewNop())

	require.NoError(t, repo.Save(ctx, nil))

	raw, _, err := storage.GetItem(ctx, KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestBookingRepository_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(ctx, KeyBookings, "{broken"))

	repo := NewBookingRepository(storage, zap.NewNop())

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestBookingRepository_SaveError(t *testing.T) {
	storageErr := errors.New("disk full")
	repo := NewBookingRepository(&failingStorage{MemoryStorage: NewMemoryStorage(), err: storageErr}, zap.NewNop())

	err := repo.Save(context.Background(), []entity.Booking{{ID: "x"}})
	assert.ErrorIs(t, err, storageErr)
}
