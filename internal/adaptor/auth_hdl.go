package adaptor

import (
	"encoding/json"
	"net/http"

	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/internal/usecase"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", session)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Me handles GET /api/me. Behind AuthSession the user is already in the
// request context; the session store is read only when it is not.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if username, ok := utils.GetUsernameFromContext(r.Context()); ok {
		email, _ := utils.GetEmailFromContext(r.Context())
		utils.ResponseSuccess(w, "success", response.SessionResponse{
			Authenticated: true,
			Username:      username,
			Email:         email,
		})
		return
	}

	session, err := h.service.Current(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ForgotPassword handles POST /api/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please enter a valid email address", validationErrors)
		return
	}

	reset, err := h.service.RequestPasswordReset(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "request password reset")
		return
	}

	utils.ResponseSuccess(w, "Check your email", reset)
}
