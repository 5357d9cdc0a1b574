package wire

import (
	"localserve/internal/adaptor"
	"localserve/internal/data/repository"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/payments - Open the payment page for a flow redirect
		r.Post("/", paymentHandler.StartPayment)

		r.Get("/{id}", paymentHandler.GetPayment)

		// POST /api/payments/{id}/pay - Run the simulated charge
		r.Post("/{id}/pay", paymentHandler.Pay)
	})
}
