package usecase

import (
	"slices"
	"strings"
	"time"

	"localserve/internal/data/entity"
	"localserve/pkg/utils"
)

// Booking date layouts, most specific first.
var bookingDateLayouts = []string{
	"2006-01-02, 03:04 PM",
	"2006-01-02, 3:04 PM",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ApplyFilters keeps the providers matching every active predicate, in input order.
// Location is carried in the filter but does not narrow results.
func ApplyFilters(providers []entity.Provider, spec entity.FilterSpec) []entity.Provider {
	out := make([]entity.Provider, 0, len(providers))
	for _, p := range providers {
		if len(spec.ServiceTypes) > 0 && !slices.Contains(spec.ServiceTypes, p.ServiceType) {
			continue
		}
		if spec.MinRating != nil && p.Rating < *spec.MinRating {
			continue
		}
		price := utils.ExtractDigits(p.Price)
		if price < spec.PriceRange.Min || price > spec.PriceRange.Max {
			continue
		}
		if len(spec.Availability) > 0 && !slices.Contains(spec.Availability, p.Availability) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ActiveFiltersCount counts the dimensions of spec that differ from the defaults.
func ActiveFiltersCount(spec entity.FilterSpec) int {
	count := 0
	if spec.Location != nil && spec.Location.Name != "" {
		count++
	}
	if len(spec.ServiceTypes) > 0 {
		count++
	}
	if spec.MinRating != nil {
		count++
	}
	if spec.PriceRange.Min != entity.DefaultMinPrice || spec.PriceRange.Max != entity.DefaultMaxPrice {
		count++
	}
	if len(spec.Availability) > 0 {
		count++
	}
	return count
}

// SortBookings returns a stably sorted copy. Unknown keys keep the input order.
func SortBookings(bookings []entity.Booking, key entity.BookingSortKey) []entity.Booking {
	out := slices.Clone(bookings)
	if out == nil {
		out = []entity.Booking{}
	}

	switch key {
	case entity.SortByDate:
		slices.SortStableFunc(out, func(a, b entity.Booking) int {
			return ParseBookingDate(b.Date).Compare(ParseBookingDate(a.Date))
		})
	case entity.SortByPrice:
		slices.SortStableFunc(out, func(a, b entity.Booking) int {
			return utils.ExtractDigits(b.Price) - utils.ExtractDigits(a.Price)
		})
	case entity.SortByStatus:
		slices.SortStableFunc(out, func(a, b entity.Booking) int {
			return strings.Compare(string(a.Status), string(b.Status))
		})
	}
	return out
}

// FilterByStatus implements the dashboard tabs. "all" or empty keeps everything.
func FilterByStatus(bookings []entity.Booking, status string) []entity.Booking {
	if status == "" || status == "all" {
		return slices.Clone(bookings)
	}

	out := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

// ParseBookingDate returns the zero time when value matches no known layout,
// which places it last in a descending date sort.
func ParseBookingDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
