package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `json:"id"`
	Service       string        `json:"service"`
	Provider      string        `json:"provider"`
	ProviderPhoto string        `json:"providerPhoto"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
	Price         string        `json:"price"`
	Rating        *float64      `json:"rating,omitempty"`
	Location      string        `json:"location"`
	ServiceType   string        `json:"serviceType"`
	Distance      string        `json:"distance"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// BookingDraft is a booking before the store assigns its identifier.
type BookingDraft struct {
	Service       string
	Provider      string
	ProviderPhoto string
	Date          string
	Time          string
	Status        BookingStatus
	Price         string
	Rating        *float64
	Location      string
	ServiceType   string
	Distance      string
}

type BookingSortKey string

const (
	SortByDate   BookingSortKey = "date"
	SortByPrice  BookingSortKey = "price"
	SortByStatus BookingSortKey = "status"
)
