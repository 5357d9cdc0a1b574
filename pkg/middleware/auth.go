package middleware

import (
	"net/http"

	"localserve/internal/data/repository"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession rejects requests unless the stored session flag is set
func AuthSession(sessions repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Get(r.Context())
			if err != nil {
				logger.Error("Failed to read session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil || !session.Authenticated {
				logger.Warn("Unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method))
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.Username, session.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
