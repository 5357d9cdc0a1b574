package response

import (
	"time"

	"localserve/internal/data/entity"
)

type FlowResponse struct {
	ID          string           `json:"id"`
	State       entity.FlowState `json:"state"`
	Provider    ProviderResponse `json:"provider"`
	Date        string           `json:"date,omitempty"`
	Time        string           `json:"time,omitempty"`
	TimeSlots   []string         `json:"time_slots,omitempty"`
	CanContinue bool             `json:"can_continue"`
	Processing  bool             `json:"processing"`
	Booking     *BookingResponse `json:"booking,omitempty"`
	RedirectTo  string           `json:"redirect_to,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func FlowToResponse(flow entity.BookingFlow) FlowResponse {
	resp := FlowResponse{
		ID:          flow.ID.String(),
		State:       flow.State,
		Provider:    ProviderToResponse(flow.Provider),
		Date:        flow.Date,
		Time:        flow.Time,
		CanContinue: flow.State == entity.FlowStateDetails && flow.Date != "" && flow.Time != "",
		Processing:  flow.Processing,
		RedirectTo:  flow.RedirectTo,
		CreatedAt:   flow.CreatedAt,
		UpdatedAt:   flow.UpdatedAt,
	}

	if flow.State == entity.FlowStateDetails {
		resp.TimeSlots = entity.TimeSlots
	}

	if flow.Booking != nil {
		b := BookingToResponse(*flow.Booking)
		resp.Booking = &b
	}

	return resp
}
