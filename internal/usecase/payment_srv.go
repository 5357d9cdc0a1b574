package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"localserve/internal/data/entity"
	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const paymentSuccessRedirect = "/dashboard"

type PaymentService interface {
	StartPayment(ctx context.Context, req *request.StartPaymentRequest) (*response.PaymentResponse, error)
	Pay(ctx context.Context, id string, req *request.PayRequest) (*response.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*response.PaymentResponse, error)
}

// paymentService simulates a gateway: a fixed delay, then unconditional success.
// Card and UPI details are never collected.
type paymentService struct {
	amount        int
	delay         time.Duration
	redirectDelay time.Duration
	now           func() time.Time

	mu       sync.Mutex
	payments map[uuid.UUID]*entity.Payment

	log *zap.Logger
}

func NewPaymentService(config *utils.Config, log *zap.Logger) PaymentService {
	amount := config.Booking.PaymentAmount
	if amount <= 0 {
		amount = 500
	}
	return &paymentService{
		amount:        amount,
		delay:         config.Booking.PaymentDelay,
		redirectDelay: config.Booking.RedirectDelay,
		now:           time.Now,
		payments:      make(map[uuid.UUID]*entity.Payment),
		log:           log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) StartPayment(ctx context.Context, req *request.StartPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	if !entity.IsTimeSlot(req.Time) {
		s.log.Warn("Start payment with unknown time slot", zap.String("time", req.Time))
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.Time)
	}

	payment := &entity.Payment{
		ID:         uuid.New(),
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Time:       req.Time,
		Amount:     s.amount,
		Status:     entity.PaymentStatusAwaitingMethod,
		CreatedAt:  s.now(),
	}

	s.mu.Lock()
	s.payments[payment.ID] = payment
	resp := response.PaymentToResponse(*payment)
	s.mu.Unlock()

	s.log.Info("Payment started",
		zap.String("payment_id", payment.ID.String()),
		zap.String("provider_id", payment.ProviderID),
		zap.Int("amount", payment.Amount))

	return &resp, nil
}

func (s *paymentService) Pay(ctx context.Context, id string, req *request.PayRequest) (*response.PaymentResponse, error) {
	if req.Method == "" {
		return nil, ErrPaymentMethodRequired
	}
	method := entity.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.Method)
	}

	s.mu.Lock()
	payment, err := s.paymentLocked(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	switch payment.Status {
	case entity.PaymentStatusProcessing:
		s.mu.Unlock()
		return nil, ErrPaymentInProgress
	case entity.PaymentStatusSucceeded:
		s.mu.Unlock()
		return nil, ErrPaymentCompleted
	}
	payment.Method = method
	payment.Status = entity.PaymentStatusProcessing
	s.mu.Unlock()

	waitErr := utils.Wait(ctx, s.delay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if waitErr != nil {
		payment.Status = entity.PaymentStatusAwaitingMethod
		return nil, fmt.Errorf("process payment: %w", waitErr)
	}

	paidAt := s.now()
	payment.Status = entity.PaymentStatusSucceeded
	payment.PaidAt = &paidAt
	payment.RedirectTo = paymentSuccessRedirect
	payment.RedirectAfter = s.redirectDelay

	s.log.Info("Payment succeeded",
		zap.String("payment_id", id),
		zap.String("method", string(method)),
		zap.Int("amount", payment.Amount))

	resp := response.PaymentToResponse(*payment)
	return &resp, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*response.PaymentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, err := s.paymentLocked(id)
	if err != nil {
		return nil, err
	}

	resp := response.PaymentToResponse(*payment)
	return &resp, nil
}

func (s *paymentService) paymentLocked(id string) (*entity.Payment, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}

	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	return payment, nil
}
