package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"localserve/internal/data/entity"

	"go.uber.org/zap"
)

// BookingRepository persists the whole ordered booking collection as one JSON value.
type BookingRepository interface {
	Load(ctx context.Context) ([]entity.Booking, error)
	Save(ctx context.Context, bookings []entity.Booking) error
}

type bookingRepository struct {
	storage Storage
	log     *zap.Logger
}

func NewBookingRepository(storage Storage, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		storage: storage,
		log:     log.With(zap.String("repository", "booking")),
	}
}

// Load returns nil when nothing was persisted yet and ErrCorruptSnapshot when
// the stored value cannot be decoded.
func (r *bookingRepository) Load(ctx context.Context) ([]entity.Booking, error) {
	raw, ok, err := r.storage.GetItem(ctx, KeyBookings)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var bookings []entity.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, bookings []entity.Booking) error {
	if bookings == nil {
		bookings = []entity.Booking{}
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	if err := r.storage.SetItem(ctx, KeyBookings, string(data)); err != nil {
		r.log.Error("Failed to persist bookings",
			zap.Error(err),
			zap.Int("count", len(bookings)))
		return fmt.Errorf("save bookings: %w", err)
	}

	return nil
}
