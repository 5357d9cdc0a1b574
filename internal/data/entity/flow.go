package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlowState string

const (
	FlowStateDetails   FlowState = "details"
	FlowStateConfirm   FlowState = "confirm"
	FlowStateSuccess   FlowState = "success"
	FlowStateCancelled FlowState = "cancelled"
)

type FlowEvent string

const (
	FlowEventContinue FlowEvent = "continue"
	FlowEventBack     FlowEvent = "back"
	FlowEventConfirm  FlowEvent = "confirm"
	FlowEventCancel   FlowEvent = "cancel"
	FlowEventClose    FlowEvent = "close"
)

// TimeSlots are the bookable slots offered in the details step.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

func IsTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

type BookingFlow struct {
	ID         uuid.UUID `json:"id"`
	Provider   Provider  `json:"provider"`
	State      FlowState `json:"state"`
	Date       string    `json:"date,omitempty"`
	Time       string    `json:"time,omitempty"`
	Processing bool      `json:"processing"`
	Booking    *Booking  `json:"booking,omitempty"`
	RedirectTo string    `json:"redirectTo,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
