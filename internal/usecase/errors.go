package usecase

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrProviderNotFound = errors.New("provider not found")

	ErrBookingFlowNotFound = errors.New("booking flow not found")
	ErrInvalidTransition   = errors.New("invalid booking flow transition")
	ErrSelectionIncomplete = errors.New("date and time slot must be selected")
	ErrDateInPast          = errors.New("date cannot be before today")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrFlowBusy            = errors.New("booking flow is already processing")
	ErrFlowClosed          = errors.New("booking flow was closed")

	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentMethodRequired = errors.New("payment method must be selected")
	ErrPaymentInProgress     = errors.New("payment is already processing")
	ErrPaymentCompleted      = errors.New("payment already completed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
