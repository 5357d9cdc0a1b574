package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Storage keys shared with the original browser client.
const (
	KeyBookings        = "localserve-bookings"
	KeyIsAuthenticated = "isAuthenticated"
	KeyUsername        = "username"
	KeyEmail           = "email"
)

var ErrCorruptSnapshot = errors.New("persisted snapshot is malformed")

// Storage is a string key/value store with local-storage semantics.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

type Repository struct {
	Storage Storage
	Booking BookingRepository
	Session SessionRepository
}

func NewRepository(storage Storage, log *zap.Logger) *Repository {
	return &Repository{
		Storage: storage,
		Booking: NewBookingRepository(storage, log),
		Session: NewSessionRepository(storage, log),
	}
}
