package wire

import (
	"localserve/internal/adaptor"
	"localserve/internal/data/repository"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProvider(
	r chi.Router,
	providerHandler *adaptor.ProviderHandler,
	chatHandler *adaptor.ChatHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/providers", func(r chi.Router) {
		// GET /api/providers?results=N - Reload the catalog
		r.Get("/", providerHandler.LoadCatalog)

		// POST /api/providers/filter - Narrow the last loaded catalog
		r.Post("/filter", providerHandler.FilterProviders)

		// GET /api/providers/recommended - Homepage recommendations
		r.Get("/recommended", providerHandler.GetRecommended)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, log))

			// GET /api/providers/{id}/messages - Conversation with a provider
			r.Get("/{id}/messages", chatHandler.GetConversation)

			// POST /api/providers/{id}/messages - Message a provider and wait for the reply
			r.Post("/{id}/messages", chatHandler.SendMessage)
		})
	})
}
