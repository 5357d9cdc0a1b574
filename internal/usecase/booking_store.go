package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"localserve/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingPersistence stores the full ordered booking collection.
type BookingPersistence interface {
	Load(ctx context.Context) ([]entity.Booking, error)
	Save(ctx context.Context, bookings []entity.Booking) error
}

// BookingStore is the single writer of the booking collection. The collection
// is ordered newest first and every mutation re-persists all of it.
type BookingStore struct {
	mu          sync.Mutex
	persistence BookingPersistence
	bookings    []entity.Booking
	version     uint64

	subMu       sync.Mutex
	subscribers map[int]func([]entity.Booking)
	nextSub     int

	// deliverMu serialises notifications; delivered is the newest version sent.
	deliverMu sync.Mutex
	delivered uint64

	newID func() (string, error)
	now   func() time.Time
	log   *zap.Logger
}

func NewBookingStore(persistence BookingPersistence, log *zap.Logger) *BookingStore {
	return &BookingStore{
		persistence: persistence,
		subscribers: make(map[int]func([]entity.Booking)),
		newID:       newBookingID,
		now:         time.Now,
		log:         log.With(zap.String("service", "booking_store")),
	}
}

// UUIDv7 is time ordered, so ids increase with creation time.
func newBookingID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load rehydrates the collection. Missing or malformed data yields an empty collection.
func (s *BookingStore) Load(ctx context.Context) {
	bookings, err := s.persistence.Load(ctx)
	if err != nil {
		s.log.Warn("Failed to load persisted bookings, starting empty", zap.Error(err))
		bookings = nil
	}

	s.mu.Lock()
	s.bookings = bookings
	snapshot, version := s.snapshot(), s.bump()
	s.mu.Unlock()

	s.log.Info("Bookings loaded", zap.Int("count", len(snapshot)))
	s.notify(version, snapshot)
}

// Add assigns a fresh id, prepends the booking and persists the collection.
func (s *BookingStore) Add(ctx context.Context, draft entity.BookingDraft) (entity.Booking, error) {
	id, err := s.newID()
	if err != nil {
		return entity.Booking{}, fmt.Errorf("generate booking id: %w", err)
	}

	booking := entity.Booking{
		ID:            id,
		Service:       draft.Service,
		Provider:      draft.Provider,
		ProviderPhoto: draft.ProviderPhoto,
		Date:          draft.Date,
		Time:          draft.Time,
		Status:        draft.Status,
		Price:         draft.Price,
		Rating:        draft.Rating,
		Location:      draft.Location,
		ServiceType:   draft.ServiceType,
		Distance:      draft.Distance,
		CreatedAt:     s.now().UTC(),
	}
	if booking.Status == "" {
		booking.Status = entity.BookingStatusPending
	}

	s.mu.Lock()
	next := make([]entity.Booking, 0, len(s.bookings)+1)
	next = append(next, booking)
	next = append(next, s.bookings...)
	s.bookings = next
	snapshot, version := s.snapshot(), s.bump()
	err = s.persist(ctx, snapshot)
	s.mu.Unlock()

	s.log.Info("Booking added",
		zap.String("booking_id", booking.ID),
		zap.String("provider", booking.Provider),
		zap.String("date", booking.Date))

	s.notify(version, snapshot)
	return booking, err
}

// Remove deletes the booking with id. It reports whether an entry was removed.
func (s *BookingStore) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	found := false
	next := make([]entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.ID == id {
			found = true
			continue
		}
		next = append(next, b)
	}
	s.bookings = next
	snapshot, version := s.snapshot(), s.bump()
	err := s.persist(ctx, snapshot)
	s.mu.Unlock()

	if found {
		s.log.Info("Booking removed", zap.String("booking_id", id))
		s.notify(version, snapshot)
	}
	return found, err
}

// UpdateStatus replaces the status of the booking with id. It reports whether an entry matched.
func (s *BookingStore) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	s.mu.Lock()
	found := false
	next := make([]entity.Booking, len(s.bookings))
	for i, b := range s.bookings {
		if b.ID == id {
			b.Status = status
			found = true
		}
		next[i] = b
	}
	s.bookings = next
	snapshot, version := s.snapshot(), s.bump()
	err := s.persist(ctx, snapshot)
	s.mu.Unlock()

	if found {
		s.log.Info("Booking status updated",
			zap.String("booking_id", id),
			zap.String("status", string(status)))
		s.notify(version, snapshot)
	}
	return found, err
}

// List returns a copy of the collection, newest first.
func (s *BookingStore) List() []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *BookingStore) Get(id string) (entity.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Booking{}, false
}

// Subscribe registers fn to receive the collection after every change.
// Deliveries are serialised and never go back to an older collection, so fn
// must not mutate the store. The returned func removes the subscription.
func (s *BookingStore) Subscribe(fn func([]entity.Booking)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// snapshot must be called with mu held
func (s *BookingStore) snapshot() []entity.Booking {
	out := make([]entity.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// persist must be called with mu held
func (s *BookingStore) persist(ctx context.Context, bookings []entity.Booking) error {
	if err := s.persistence.Save(ctx, bookings); err != nil {
		s.log.Error("Failed to persist bookings", zap.Error(err), zap.Int("count", len(bookings)))
		return fmt.Errorf("persist bookings: %w", err)
	}
	return nil
}

// bump must be called with mu held
func (s *BookingStore) bump() uint64 {
	s.version++
	return s.version
}

// notify hands the snapshot of version to every subscriber. A snapshot that
// lost the race to a newer one is dropped.
func (s *BookingStore) notify(version uint64, bookings []entity.Booking) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if version <= s.delivered {
		s.log.Debug("Dropping superseded booking snapshot", zap.Uint64("version", version))
		return
	}
	s.delivered = version

	s.subMu.Lock()
	fns := make([]func([]entity.Booking), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(bookings)
	}
}
