package entity

type StatusCounts struct {
	All       int `json:"all"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// Trend compares a headline metric against a synthetic previous period.
// Series holds the seven chart points, oldest first.
type Trend struct {
	Previous float64   `json:"previous"`
	Change   string    `json:"change"`
	Up       bool      `json:"up"`
	Series   []float64 `json:"series,omitempty"`
}

type DashboardStats struct {
	Counts            StatusCounts `json:"counts"`
	AverageRating     float64      `json:"averageRating"`
	TotalSpent        int          `json:"totalSpent"`
	BookingsTrend     Trend        `json:"bookingsTrend"`
	PendingTrend      Trend        `json:"pendingTrend"`
	RatingTrend       Trend        `json:"ratingTrend"`
	SpentTrend        Trend        `json:"spentTrend"`
	FavoriteProviders int          `json:"favoriteProviders"`
	ServiceAreas      int          `json:"serviceAreas"`
	LoyaltyPoints     int          `json:"loyaltyPoints"`
	MonthlySavings    int          `json:"monthlySavings"`
}
