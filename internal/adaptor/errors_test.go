package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"localserve/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not authenticated", usecase.ErrNotAuthenticated, http.StatusUnauthorized},
		{"booking not found", fmt.Errorf("%w: abc", usecase.ErrBookingNotFound), http.StatusNotFound},
		{"flow not found", usecase.ErrBookingFlowNotFound, http.StatusNotFound},
		{"payment not found", usecase.ErrPaymentNotFound, http.StatusNotFound},
		{"provider not found", usecase.ErrProviderNotFound, http.StatusNotFound},
		{"validation", fmt.Errorf("%w: status", usecase.ErrValidation), http.StatusBadRequest},
		{"selection incomplete", usecase.ErrSelectionIncomplete, http.StatusBadRequest},
		{"date in past", usecase.ErrDateInPast, http.StatusBadRequest},
		{"bad slot", usecase.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"method required", usecase.ErrPaymentMethodRequired, http.StatusBadRequest},
		{"invalid transition", usecase.ErrInvalidTransition, http.StatusConflict},
		{"flow busy", usecase.ErrFlowBusy, http.StatusConflict},
		{"flow closed", usecase.ErrFlowClosed, http.StatusConflict},
		{"payment in progress", usecase.ErrPaymentInProgress, http.StatusConflict},
		{"payment completed", usecase.ErrPaymentCompleted, http.StatusConflict},
		{"cancelled", fmt.Errorf("confirm: %w", context.Canceled), http.StatusRequestTimeout},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandleServiceError_InvalidCredentialsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), usecase.ErrInvalidCredentials, "login")

	assert.Contains(t, rec.Body.String(), usecase.InvalidCredentialsMessage)
}

func TestHandleServiceError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), errors.New("pq: password authentication failed"), "list")

	assert.NotContains(t, rec.Body.String(), "password authentication")
}
