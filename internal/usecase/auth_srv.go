package usecase

import (
	"context"
	"fmt"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/data/repository"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

// InvalidCredentialsMessage is shown to the user on a failed login.
const InvalidCredentialsMessage = "Invalid credentials. Try demo / demo@localserve.com with password: password123"

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.SessionResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*response.SessionResponse, error)
	RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.PasswordResetResponse, error)
}

type authService struct {
	sessions   repository.SessionRepository
	account    entity.DemoAccount
	resetDelay time.Duration
	log        *zap.Logger
}

// NewAuthService hashes the configured demo password once at startup.
func NewAuthService(sessions repository.SessionRepository, config *utils.Config, log *zap.Logger) (AuthService, error) {
	hash, err := utils.HashPassword(config.Demo.Password)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	return &authService{
		sessions: sessions,
		account: entity.DemoAccount{
			Username:     config.Demo.Username,
			Email:        config.Demo.Email,
			PasswordHash: hash,
		},
		resetDelay: config.Demo.ResetDelay,
		log:        log.With(zap.String("service", "auth")),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.SessionResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Username or email must match the demo account
	if req.Username != s.account.Username && req.Username != s.account.Email {
		s.log.Warn("Unknown login identifier", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPassword(s.account.PasswordHash, req.Password) {
		s.log.Warn("Invalid password", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 4. Store session keys
	session := entity.Session{
		Authenticated: true,
		Username:      s.account.Username,
		Email:         s.account.Email,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in", zap.String("username", session.Username))

	resp := response.SessionToResponse(&session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) Current(ctx context.Context) (*response.SessionResponse, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.Authenticated {
		return nil, ErrNotAuthenticated
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

// RequestPasswordReset pretends to mail a reset link. No mail leaves the
// process and any well-formed address is accepted.
func (s *authService) RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.PasswordResetResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Password reset validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if err := utils.Wait(ctx, s.resetDelay); err != nil {
		return nil, fmt.Errorf("send reset link: %w", err)
	}

	s.log.Info("Password reset link sent", zap.String("email", req.Email))

	return &response.PasswordResetResponse{
		Email:   req.Email,
		Message: fmt.Sprintf("We've sent a password reset link to %s", req.Email),
	}, nil
}
