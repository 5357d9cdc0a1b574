package wire

import (
	"localserve/internal/adaptor"
	"localserve/internal/data/repository"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBookingFlow(
	r chi.Router,
	flowHandler *adaptor.BookingFlowHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/booking-flows", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking-flows - Open the booking modal for a provider
		r.Post("/", flowHandler.StartFlow)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", flowHandler.GetFlow)
			r.Delete("/", flowHandler.CloseFlow)

			r.Put("/selection", flowHandler.SelectSlot)
			r.Post("/continue", flowHandler.Continue)
			r.Post("/back", flowHandler.Back)
			r.Post("/confirm", flowHandler.Confirm)
			r.Post("/cancel", flowHandler.Cancel)
		})
	})
}
