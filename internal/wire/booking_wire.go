package wire

import (
	"localserve/internal/adaptor"
	"localserve/internal/data/repository"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings?status=&sort= - List bookings
		r.Get("/", bookingHandler.ListBookings)

		r.Get("/{id}", bookingHandler.GetBooking)

		// PATCH /api/bookings/{id}/status - Move a booking to another status
		r.Patch("/{id}/status", bookingHandler.UpdateStatus)

		r.Delete("/{id}", bookingHandler.RemoveBooking)
	})
}
