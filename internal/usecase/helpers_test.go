package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/data/repository"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

// seqRandom replays values in order, wrapping around.
type seqRandom struct {
	values []float64
	i      int
}

func (s *seqRandom) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

type stubIdentitySource struct {
	identities []entity.Identity
	err        error
	requested  int
}

func (s *stubIdentitySource) FetchIdentities(_ context.Context, count int) ([]entity.Identity, error) {
	s.requested = count
	if s.err != nil {
		return nil, s.err
	}
	return s.identities, nil
}

func identities(n int) []entity.Identity {
	out := make([]entity.Identity, n)
	for i := range out {
		out[i] = entity.Identity{
			FirstName: fmt.Sprintf("First%d", i+1),
			LastName:  fmt.Sprintf("Last%d", i+1),
			Photo:     fmt.Sprintf("https://img/%d.jpg", i+1),
			Phone:     fmt.Sprintf("555-%04d", i+1),
		}
	}
	return out
}

type stubProviderLookup struct {
	providers map[int]entity.Provider
}

func (s *stubProviderLookup) GetProvider(_ context.Context, id int) (*entity.Provider, error) {
	p, ok := s.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProviderNotFound, id)
	}
	return &p, nil
}

type failingPersistence struct {
	loadErr error
	saveErr error
	saved   [][]entity.Booking
}

func (p *failingPersistence) Load(context.Context) ([]entity.Booking, error) {
	return nil, p.loadErr
}

func (p *failingPersistence) Save(_ context.Context, bookings []entity.Booking) error {
	p.saved = append(p.saved, bookings)
	return p.saveErr
}

var errStorageDown = errors.New("storage down")

func newTestStore() (*BookingStore, repository.Storage) {
	storage := repository.NewMemoryStorage()
	return NewBookingStore(repository.NewBookingRepository(storage, zap.NewNop()), zap.NewNop()), storage
}

func testConfig() *utils.Config {
	return &utils.Config{
		Catalog: utils.CatalogConfig{Size: 20, Timeout: time.Second},
		Booking: utils.BookingConfig{
			ConfirmDelay:  5 * time.Millisecond,
			PaymentDelay:  5 * time.Millisecond,
			RedirectDelay: 2 * time.Second,
			PaymentAmount: 500,
		},
		Chat: utils.ChatConfig{ReplyDelay: 5 * time.Millisecond},
		Demo: utils.DemoConfig{
			Username:   "demo",
			Email:      "demo@localserve.com",
			Password:   "password123",
			ResetDelay: 5 * time.Millisecond,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
