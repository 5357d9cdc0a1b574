package wire

import (
	"localserve/internal/adaptor"
	"localserve/internal/data/repository"
	"localserve/pkg/middleware"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/dashboard/stats", dashboardHandler.GetStats)
}
