package usecase

import (
	"context"
	"testing"

	"localserve/internal/data/entity"
	"localserve/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func draft(provider, price string) entity.BookingDraft {
	return entity.BookingDraft{
		Service:     "Carpenter",
		Provider:    provider,
		Date:        "2025-01-10, 10:00 AM",
		Time:        "10:00 AM",
		Status:      entity.BookingStatusPending,
		Price:       price,
		Location:    "1.2 km",
		ServiceType: "Carpenter",
		Distance:    "1.2 km",
	}
}

func TestBookingStore_AddThenLoadKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore()
	store.Load(ctx)

	_, err := store.Add(ctx, draft("Rajesh Kumar", "₹500/hour"))
	require.NoError(t, err)
	added, err := store.Add(ctx, draft("Priya Sharma", "₹300/hour"))
	require.NoError(t, err)

	reloaded := NewBookingStore(repository.NewBookingRepository(storage, zap.NewNop()), zap.NewNop())
	reloaded.Load(ctx)

	bookings := reloaded.List()
	require.Len(t, bookings, 2)
	assert.Equal(t, added, bookings[0])
	assert.Equal(t, "Rajesh Kumar", bookings[1].Provider)
}

func TestBookingStore_IDsIncreaseWithCreation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	var ids []string
	for i := 0; i < 20; i++ {
		b, err := store.Add(ctx, draft("P", "₹100/hour"))
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}

	seen := make(map[string]bool)
	for i, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		if i > 0 {
			assert.Greater(t, id, ids[i-1])
		}
	}
}

func TestBookingStore_UpdateStatusMissingLeavesCollection(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	_, err := store.Add(ctx, draft("A", "₹100/hour"))
	require.NoError(t, err)
	_, err = store.Add(ctx, draft("B", "₹200/hour"))
	require.NoError(t, err)

	before := store.List()

	found, err := store.UpdateStatus(ctx, "does-not-exist", entity.BookingStatusCompleted)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, store.List())
}

func TestBookingStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	b, err := store.Add(ctx, draft("A", "₹100/hour"))
	require.NoError(t, err)

	found, err := store.UpdateStatus(ctx, b.ID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := store.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusConfirmed, got.Status)

	_, err = store.UpdateStatus(ctx, b.ID, entity.BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	a, err := store.Add(ctx, draft("A", "₹100/hour"))
	require.NoError(t, err)
	_, err = store.Add(ctx, draft("B", "₹200/hour"))
	require.NoError(t, err)

	found, err := store.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, found)

	bookings := store.List()
	require.Len(t, bookings, 1)
	assert.Equal(t, "B", bookings[0].Provider)
}

func TestBookingStore_LoadMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	require.NoError(t, storage.SetItem(ctx, repository.KeyBookings, "not json"))

	store := NewBookingStore(repository.NewBookingRepository(storage, zap.NewNop()), zap.NewNop())
	store.Load(ctx)

	assert.Empty(t, store.List())
}

func TestBookingStore_SaveErrorKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	persistence := &failingPersistence{saveErr: errStorageDown}
	store := NewBookingStore(persistence, zap.NewNop())
	store.Load(ctx)

	b, err := store.Add(ctx, draft("A", "₹100/hour"))
	assert.ErrorIs(t, err, errStorageDown)
	assert.NotEmpty(t, b.ID)
	assert.Len(t, store.List(), 1)
	assert.Len(t, persistence.saved, 1)
}

func TestBookingStore_EveryMutationPersistsWholeCollection(t *testing.T) {
	ctx := context.Background()
	persistence := &failingPersistence{}
	store := NewBookingStore(persistence, zap.NewNop())

	a, _ := store.Add(ctx, draft("A", "₹100/hour"))
	_, _ = store.Add(ctx, draft("B", "₹200/hour"))
	_, _ = store.UpdateStatus(ctx, a.ID, entity.BookingStatusCompleted)
	_, _ = store.Remove(ctx, a.ID)

	require.Len(t, persistence.saved, 4)
	assert.Len(t, persistence.saved[0], 1)
	assert.Len(t, persistence.saved[1], 2)
	assert.Len(t, persistence.saved[2], 2)
	assert.Len(t, persistence.saved[3], 1)
}

func TestBookingStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	var calls [][]entity.Booking
	unsubscribe := store.Subscribe(func(b []entity.Booking) {
		calls = append(calls, b)
	})

	a, err := store.Add(ctx, draft("A", "₹100/hour"))
	require.NoError(t, err)
	_, err = store.UpdateStatus(ctx, "missing", entity.BookingStatusCompleted)
	require.NoError(t, err)
	_, err = store.UpdateStatus(ctx, a.ID, entity.BookingStatusCompleted)
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, entity.BookingStatusCompleted, calls[1][0].Status)

	unsubscribe()
	_, err = store.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, calls, 2)
}
