package usecase

import (
	"context"
	"testing"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededBookingService(t *testing.T) (BookingService, []entity.Booking) {
	t.Helper()
	ctx := context.Background()
	store, _ := newTestStore()

	var added []entity.Booking
	for _, d := range []entity.BookingDraft{
		{Provider: "A", Date: "2025-01-10, 10:00 AM", Price: "₹500/hour", Status: entity.BookingStatusPending},
		{Provider: "B", Date: "2025-01-12, 10:00 AM", Price: "₹300/hour", Status: entity.BookingStatusCompleted},
		{Provider: "C", Date: "2025-01-11, 10:00 AM", Price: "₹700/hour", Status: entity.BookingStatusPending},
	} {
		b, err := store.Add(ctx, d)
		require.NoError(t, err)
		added = append(added, b)
	}

	return NewBookingService(store, zap.NewNop()), added
}

func TestBookingService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := seededBookingService(t)

	page, err := svc.ListBookings(ctx, &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{page.Data[0].Provider, page.Data[1].Provider, page.Data[2].Provider})
	assert.Equal(t, int64(3), page.Pagination.Total)

	page, err = svc.ListBookings(ctx, &request.ListBookingsRequest{
		Status:           "pending",
		Sort:             "price",
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 1},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "C", page.Data[0].Provider)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = svc.ListBookings(ctx, &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 5, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	_, err = svc.ListBookings(ctx, &request.ListBookingsRequest{
		Sort:             "name",
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBookingService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	svc, added := seededBookingService(t)
	id := added[0].ID

	updated, err := svc.UpdateStatus(ctx, id, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)

	_, err = svc.UpdateStatus(ctx, "missing", &request.UpdateBookingStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.UpdateStatus(ctx, id, &request.UpdateBookingStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.RemoveBooking(ctx, id))
	assert.ErrorIs(t, svc.RemoveBooking(ctx, id), ErrBookingNotFound)

	_, err = svc.GetBooking(ctx, id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
