package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"localserve/internal/data/entity"
	"localserve/internal/dto/response"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

// Multipliers for the synthetic previous period. They are decorative, not history.
const (
	prevBookingsFactor = 0.81
	prevPendingFactor  = 1.14
	prevSpentFactor    = 0.87
	prevRatingOffset   = 0.2

	maxFavoriteProviders = 5
	maxServiceAreas      = 3
	loyaltyPerBooking    = 100
	loyaltyBase          = 250
	savingsRate          = 0.15

	seriesPeriods       = 7
	seriesNoise         = 5
	seriesDefaultRating = 4.5
	seriesDefaultSpent  = 1000
)

// ComputeStats derives the dashboard figures from bookings.
func ComputeStats(bookings []entity.Booking) entity.DashboardStats {
	var stats entity.DashboardStats

	providers := make(map[string]struct{})
	locations := make(map[string]struct{})
	ratingSum, rated := 0.0, 0

	for _, b := range bookings {
		stats.Counts.All++
		switch b.Status {
		case entity.BookingStatusPending:
			stats.Counts.Pending++
		case entity.BookingStatusConfirmed:
			stats.Counts.Confirmed++
		case entity.BookingStatusCompleted:
			stats.Counts.Completed++
			if b.Rating != nil {
				ratingSum += *b.Rating
				rated++
			}
		}

		stats.TotalSpent += utils.ExtractDigits(b.Price)
		providers[b.Provider] = struct{}{}
		locations[b.Location] = struct{}{}
	}

	if rated > 0 {
		stats.AverageRating = utils.RoundTo(ratingSum/float64(rated), 1)
	}

	total := stats.Counts.All
	pending := stats.Counts.Pending

	prevTotal := int(math.Floor(float64(total) * prevBookingsFactor))
	stats.BookingsTrend = entity.Trend{
		Previous: float64(prevTotal),
		Change:   increase(total, prevTotal),
		Up:       true,
	}

	prevPending := int(math.Floor(float64(pending) * prevPendingFactor))
	pendingChange := "0%"
	if pending > 0 {
		pendingChange = fmt.Sprintf("-%d%%", percent(prevPending-pending, prevPending))
	}
	stats.PendingTrend = entity.Trend{
		Previous: float64(prevPending),
		Change:   pendingChange,
	}

	prevRating := utils.RoundTo(stats.AverageRating-prevRatingOffset, 1)
	stats.RatingTrend = entity.Trend{
		Previous: prevRating,
		Change:   fmt.Sprintf("+%.1f", stats.AverageRating-prevRating),
		Up:       true,
	}

	prevSpent := int(math.Floor(float64(stats.TotalSpent) * prevSpentFactor))
	stats.SpentTrend = entity.Trend{
		Previous: float64(prevSpent),
		Change:   increase(stats.TotalSpent, prevSpent),
		Up:       true,
	}

	stats.FavoriteProviders = min(maxFavoriteProviders, len(providers))
	stats.ServiceAreas = min(maxServiceAreas, len(locations))
	stats.LoyaltyPoints = total*loyaltyPerBooking + loyaltyBase
	stats.MonthlySavings = int(math.Floor(float64(stats.TotalSpent) * savingsRate))

	return stats
}

// AddSeries fills the chart series of the four headline trends. Period i
// holds the bookings whose index is i modulo seven; the bookings chart adds
// up to four units of noise from rnd.
func AddSeries(stats *entity.DashboardStats, bookings []entity.Booking, rnd RandomSource) {
	buckets := make([][]entity.Booking, seriesPeriods)
	for i, b := range bookings {
		buckets[i%seriesPeriods] = append(buckets[i%seriesPeriods], b)
	}

	var counts, pending, ratings, spent []float64
	for i := seriesPeriods - 1; i >= 0; i-- {
		bucket := buckets[i]

		counts = append(counts, float64(len(bucket))+math.Floor(rnd.Float64()*seriesNoise))
		pending = append(pending, float64(max(1, stats.Counts.Pending-i)))

		rating := seriesDefaultRating
		if len(bucket) > 0 {
			sum := 0.0
			for _, b := range bucket {
				if b.Rating != nil && *b.Rating != 0 {
					sum += *b.Rating
				} else {
					sum += seriesDefaultRating
				}
			}
			rating = sum / float64(len(bucket))
		}
		ratings = append(ratings, utils.RoundTo(rating, 1))

		total := 0
		for _, b := range bucket {
			total += utils.ExtractDigits(b.Price)
		}
		if total == 0 {
			total = seriesDefaultSpent
		}
		spent = append(spent, float64(total))
	}

	stats.BookingsTrend.Series = counts
	stats.PendingTrend.Series = pending
	stats.RatingTrend.Series = ratings
	stats.SpentTrend.Series = spent
}

func increase(current, previous int) string {
	if current <= 0 {
		return "0%"
	}
	return fmt.Sprintf("+%d%%", percent(current-previous, previous))
}

// percent rounds delta/base to a whole percentage. A zero base counts as 100%.
func percent(delta, base int) int {
	if base == 0 {
		return 100
	}
	return int(math.Round(float64(delta) / float64(base) * 100))
}

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardResponse, error)
}

// dashboardService caches the computed stats and drops the cache whenever the
// booking store reports a change.
type dashboardService struct {
	store *BookingStore
	rnd   RandomSource

	mu     sync.Mutex
	cached *entity.DashboardStats

	log *zap.Logger
}

func NewDashboardService(store *BookingStore, log *zap.Logger) DashboardService {
	s := &dashboardService{
		store: store,
		rnd:   NewRandomSource(),
		log:   log.With(zap.String("service", "dashboard")),
	}
	store.Subscribe(s.onBookingsChanged)
	return s
}

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		stats := s.compute(s.store.List())
		s.cached = &stats
	}

	resp := response.DashboardToResponse(*s.cached)
	return &resp, nil
}

func (s *dashboardService) compute(bookings []entity.Booking) entity.DashboardStats {
	stats := ComputeStats(bookings)
	AddSeries(&stats, bookings, s.rnd)
	return stats
}

func (s *dashboardService) onBookingsChanged(bookings []entity.Booking) {
	stats := s.compute(bookings)

	s.mu.Lock()
	s.cached = &stats
	s.mu.Unlock()

	s.log.Debug("Dashboard stats recomputed", zap.Int("bookings", stats.Counts.All))
}
