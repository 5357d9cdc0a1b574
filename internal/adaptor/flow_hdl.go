package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"localserve/internal/dto/request"
	"localserve/internal/dto/response"
	"localserve/internal/usecase"
	"localserve/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingFlowHandler struct {
	service usecase.BookingFlowService
	log     *zap.Logger
}

func NewBookingFlowHandler(service usecase.BookingFlowService, log *zap.Logger) *BookingFlowHandler {
	return &BookingFlowHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking_flow")),
	}
}

// StartFlow handles POST /api/booking-flows
func (h *BookingFlowHandler) StartFlow(w http.ResponseWriter, r *http.Request) {
	var req request.StartFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flow, err := h.service.Start(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "start booking flow")
		return
	}

	utils.ResponseCreated(w, "Booking flow started", flow)
}

// GetFlow handles GET /api/booking-flows/{id}
func (h *BookingFlowHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "get booking flow", "success", h.service.Get)
}

// SelectSlot handles PUT /api/booking-flows/{id}/selection
func (h *BookingFlowHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Booking flow ID is required", nil)
		return
	}

	var req request.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flow, err := h.service.Select(r.Context(), flowID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "select slot")
		return
	}

	utils.ResponseSuccess(w, "Selection updated", flow)
}

// Continue handles POST /api/booking-flows/{id}/continue
func (h *BookingFlowHandler) Continue(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "continue booking flow", "Review your booking", h.service.Continue)
}

// Back handles POST /api/booking-flows/{id}/back
func (h *BookingFlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "go back in booking flow", "success", h.service.Back)
}

// Confirm handles POST /api/booking-flows/{id}/confirm. The request blocks for
// the configured booking delay; a client disconnect aborts the booking.
func (h *BookingFlowHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "confirm booking", "Booking confirmed", h.service.Confirm)
}

// Cancel handles POST /api/booking-flows/{id}/cancel
func (h *BookingFlowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "cancel booking flow", "Booking cancelled", h.service.Cancel)
}

// CloseFlow handles DELETE /api/booking-flows/{id}
func (h *BookingFlowHandler) CloseFlow(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Booking flow ID is required", nil)
		return
	}

	if err := h.service.Close(r.Context(), flowID); err != nil {
		handleServiceError(w, h.log, err, "close booking flow")
		return
	}

	utils.ResponseSuccess(w, "Booking flow closed", nil)
}

func (h *BookingFlowHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	operation, message string,
	call func(ctx context.Context, id string) (*response.FlowResponse, error),
) {
	flowID := chi.URLParam(r, "id")
	if flowID == "" {
		utils.ResponseBadRequest(w, "Booking flow ID is required", nil)
		return
	}

	flow, err := call(r.Context(), flowID)
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, message, flow)
}
