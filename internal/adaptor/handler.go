package adaptor

import (
	"localserve/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Provider    *ProviderHandler
	Booking     *BookingHandler
	BookingFlow *BookingFlowHandler
	Payment     *PaymentHandler
	Dashboard   *DashboardHandler
	Chat        *ChatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Provider:    NewProviderHandler(service.Provider, log),
		Booking:     NewBookingHandler(service.Booking, log),
		BookingFlow: NewBookingFlowHandler(service.BookingFlow, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
		Chat:        NewChatHandler(service.Chat, log),
	}
}
