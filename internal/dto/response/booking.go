package response

import (
	"time"

	"localserve/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	Service       string               `json:"service"`
	Provider      string               `json:"provider"`
	ProviderPhoto string               `json:"provider_photo"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Status        entity.BookingStatus `json:"status"`
	Price         string               `json:"price"`
	Rating        *float64             `json:"rating,omitempty"`
	Location      string               `json:"location"`
	ServiceType   string               `json:"service_type"`
	Distance      string               `json:"distance"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Service:       b.Service,
		Provider:      b.Provider,
		ProviderPhoto: b.ProviderPhoto,
		Date:          b.Date,
		Time:          b.Time,
		Status:        b.Status,
		Price:         b.Price,
		Rating:        b.Rating,
		Location:      b.Location,
		ServiceType:   b.ServiceType,
		Distance:      b.Distance,
		CreatedAt:     b.CreatedAt,
	}
}

func BookingsToResponse(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
