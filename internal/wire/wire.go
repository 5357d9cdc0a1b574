package wire

import (
	"context"
	"net/http"

	"localserve/internal/adaptor"
	"localserve/internal/data/remote"
	"localserve/internal/data/repository"
	"localserve/internal/usecase"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services and handlers and mounts every route
func Wiring(
	ctx context.Context,
	repo *repository.Repository,
	source remote.IdentitySource,
	config *utils.Config,
	logger *zap.Logger,
) (*App, error) {
	service, err := usecase.NewService(ctx, repo, source, config, logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.App.RateLimitPerMin, logger))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireProvider(r, handler.Provider, handler.Chat, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireBookingFlow(r, handler.BookingFlow, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireDashboard(r, handler.Dashboard, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
