package usecase

import (
	"context"

	"localserve/internal/data/remote"
	"localserve/internal/data/repository"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Provider    ProviderService
	Booking     BookingService
	BookingFlow BookingFlowService
	Payment     PaymentService
	Dashboard   DashboardService
	Chat        ChatService

	Store *BookingStore
}

// NewService builds every service on top of repo. The booking store is
// loaded from persistence before it is handed out.
func NewService(
	ctx context.Context,
	repo *repository.Repository,
	source remote.IdentitySource,
	config *utils.Config,
	log *zap.Logger,
) (*Service, error) {
	auth, err := NewAuthService(repo.Session, config, log)
	if err != nil {
		return nil, err
	}

	store := NewBookingStore(repo.Booking, log)
	store.Load(ctx)
	dashboard := NewDashboardService(store, log)

	rnd := NewRandomSource()
	provider := NewProviderService(NewCatalogLoader(source, rnd, log), config, log)

	return &Service{
		Auth:        auth,
		Provider:    provider,
		Booking:     NewBookingService(store, log),
		BookingFlow: NewBookingFlowService(provider, store, config, log),
		Payment:     NewPaymentService(config, log),
		Dashboard:   dashboard,
		Chat:        NewChatService(provider, rnd, config, log),
		Store:       store,
	}, nil
}
