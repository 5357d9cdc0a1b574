package adaptor

import (
	"context"
	"errors"
	"net/http"

	"localserve/internal/usecase"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps usecase errors onto the JSON envelope
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.String("operation", operation))
		utils.ResponseUnauthorized(w, usecase.InvalidCredentialsMessage)

	case errors.Is(err, usecase.ErrNotAuthenticated):
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrProviderNotFound),
		errors.Is(err, usecase.ErrBookingFlowNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrSelectionIncomplete),
		errors.Is(err, usecase.ErrDateInPast),
		errors.Is(err, usecase.ErrInvalidTimeSlot),
		errors.Is(err, usecase.ErrPaymentMethodRequired):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrFlowBusy),
		errors.Is(err, usecase.ErrFlowClosed),
		errors.Is(err, usecase.ErrPaymentInProgress),
		errors.Is(err, usecase.ErrPaymentCompleted):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Info(operation+" aborted", zap.Error(err), zap.String("operation", operation))
		utils.ResponseRequestTimeout(w, "Request cancelled")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
