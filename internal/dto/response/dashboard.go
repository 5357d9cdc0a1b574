package response

import (
	"strconv"

	"localserve/internal/data/entity"
)

type TrendResponse struct {
	Previous float64   `json:"previous"`
	Change   string    `json:"change"`
	Up       bool      `json:"up"`
	Series   []float64 `json:"series"`
}

type DashboardResponse struct {
	Counts            entity.StatusCounts `json:"counts"`
	AverageRating     float64             `json:"average_rating"`
	TotalSpent        int                 `json:"total_spent"`
	TotalSpentLabel   string              `json:"total_spent_label"`
	BookingsTrend     TrendResponse       `json:"bookings_trend"`
	PendingTrend      TrendResponse       `json:"pending_trend"`
	RatingTrend       TrendResponse       `json:"rating_trend"`
	SpentTrend        TrendResponse       `json:"spent_trend"`
	FavoriteProviders int                 `json:"favorite_providers"`
	ServiceAreas      int                 `json:"service_areas"`
	LoyaltyPoints     int                 `json:"loyalty_points"`
	MonthlySavings    int                 `json:"monthly_savings"`
}

func trendToResponse(t entity.Trend) TrendResponse {
	series := t.Series
	if series == nil {
		series = []float64{}
	}
	return TrendResponse{Previous: t.Previous, Change: t.Change, Up: t.Up, Series: series}
}

func DashboardToResponse(s entity.DashboardStats) DashboardResponse {
	return DashboardResponse{
		Counts:            s.Counts,
		AverageRating:     s.AverageRating,
		TotalSpent:        s.TotalSpent,
		TotalSpentLabel:   formatRupees(s.TotalSpent),
		BookingsTrend:     trendToResponse(s.BookingsTrend),
		PendingTrend:      trendToResponse(s.PendingTrend),
		RatingTrend:       trendToResponse(s.RatingTrend),
		SpentTrend:        trendToResponse(s.SpentTrend),
		FavoriteProviders: s.FavoriteProviders,
		ServiceAreas:      s.ServiceAreas,
		LoyaltyPoints:     s.LoyaltyPoints,
		MonthlySavings:    s.MonthlySavings,
	}
}

// formatRupees groups thousands the en-IN way: 123456 -> ₹1,23,456.
func formatRupees(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := []byte(strconv.Itoa(amount))
	if len(digits) <= 3 {
		return "₹" + sign + string(digits)
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{string(head[len(head)-2:])}, groups...)
		head = head[:len(head)-2]
	}
	if len(head) > 0 {
		groups = append([]string{string(head)}, groups...)
	}

	out := "₹" + sign
	for _, g := range groups {
		out += g + ","
	}
	return out + string(tail)
}
