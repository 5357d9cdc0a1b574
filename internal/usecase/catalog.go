package usecase

import (
	"context"
	"fmt"
	"math"

	"localserve/internal/data/entity"
	"localserve/internal/data/remote"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

const (
	CatalogLoadFailedMessage = "Failed to load service providers. Please try again later."

	fallbackPhoto = "/placeholder.svg?height=80&width=80"
)

var recommendationServices = []entity.ServiceType{
	entity.ServiceElectrician,
	entity.ServiceHouseCleaning,
	entity.ServiceCarpenter,
}

var specializations = []string{"Residential", "Commercial", "Industrial"}

// CatalogResult is the outcome of a catalog load. Fallback is set when the
// identity source failed and the fixed list was substituted.
type CatalogResult struct {
	Providers []entity.Provider
	Fallback  bool
	Message   string
}

// CatalogLoader builds provider records from external identities plus random attributes.
type CatalogLoader struct {
	source remote.IdentitySource
	rnd    RandomSource
	log    *zap.Logger
}

func NewCatalogLoader(source remote.IdentitySource, rnd RandomSource, log *zap.Logger) *CatalogLoader {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &CatalogLoader{
		source: source,
		rnd:    rnd,
		log:    log.With(zap.String("service", "catalog")),
	}
}

// FetchCatalog never returns an empty list: any failure substitutes FallbackProviders.
func (l *CatalogLoader) FetchCatalog(ctx context.Context, count int) CatalogResult {
	identities, err := l.source.FetchIdentities(ctx, count)
	if err == nil && len(identities) == 0 {
		err = fmt.Errorf("identity source returned no results")
	}
	if err != nil {
		l.log.Warn("Catalog fetch failed, using fallback providers",
			zap.Error(err),
			zap.Int("requested", count))
		return CatalogResult{
			Providers: FallbackProviders(),
			Fallback:  true,
			Message:   CatalogLoadFailedMessage,
		}
	}

	providers := make([]entity.Provider, 0, len(identities))
	for i, identity := range identities {
		providers = append(providers, l.newProvider(i+1, identity))
	}

	l.log.Info("Catalog loaded", zap.Int("count", len(providers)))
	return CatalogResult{Providers: providers}
}

// FetchRecommendations returns an empty list when the identity source fails.
func (l *CatalogLoader) FetchRecommendations(ctx context.Context, count int) []entity.RecommendedProvider {
	identities, err := l.source.FetchIdentities(ctx, count)
	if err != nil {
		l.log.Warn("Recommendations fetch failed", zap.Error(err))
		return []entity.RecommendedProvider{}
	}

	out := make([]entity.RecommendedProvider, 0, len(identities))
	for i, identity := range identities {
		out = append(out, entity.RecommendedProvider{
			Name:           identity.FullName(),
			Service:        recommendationServices[i%len(recommendationServices)],
			Rating:         utils.RoundTo(4.5+l.rnd.Float64()*0.4, 1),
			Distance:       fmt.Sprintf("%.1f km", 1.0+l.rnd.Float64()*2),
			Photo:          identity.Photo,
			Price:          fmt.Sprintf("₹%d/hr", l.intBetween(300, 300)),
			Availability:   entity.RecommendationAvailability[l.index(len(entity.RecommendationAvailability))],
			Verified:       l.rnd.Float64() > 0.2,
			CompletedJobs:  l.intBetween(50, 150),
			ResponseTime:   fmt.Sprintf("%d min", l.intBetween(15, 45)),
			Phone:          identity.Phone,
			Experience:     fmt.Sprintf("%d years", l.intBetween(3, 7)),
			Specialization: specializations[l.index(len(specializations))],
		})
	}
	return out
}

func (l *CatalogLoader) newProvider(id int, identity entity.Identity) entity.Provider {
	return entity.Provider{
		ID:           id,
		Name:         identity.FullName(),
		Photo:        identity.Photo,
		Phone:        identity.Phone,
		Rating:       utils.RoundTo(4.3+l.rnd.Float64()*0.7, 1),
		ServiceType:  entity.ServiceTypes[l.index(len(entity.ServiceTypes))],
		Distance:     fmt.Sprintf("%.1f km", 0.5+l.rnd.Float64()*3),
		Price:        fmt.Sprintf("₹%d/hour", l.intBetween(250, 450)),
		Verified:     l.rnd.Float64() > 0.3,
		Availability: entity.CatalogAvailability[l.index(len(entity.CatalogAvailability))],
	}
}

// intBetween returns floor(base + r*span).
func (l *CatalogLoader) intBetween(base, span int) int {
	return int(math.Floor(float64(base) + l.rnd.Float64()*float64(span)))
}

func (l *CatalogLoader) index(n int) int {
	return pick(l.rnd, n)
}

// FallbackProviders is the fixed list served when the identity source is unavailable.
func FallbackProviders() []entity.Provider {
	return []entity.Provider{
		{
			ID:           1,
			Name:         "Rajesh Kumar",
			Photo:        fallbackPhoto,
			Rating:       4.8,
			ServiceType:  entity.ServiceCarpenter,
			Distance:     "1.2 km",
			Price:        "₹500/hour",
			Verified:     true,
			Availability: entity.AvailableToday,
		},
		{
			ID:           2,
			Name:         "Priya Sharma",
			Photo:        fallbackPhoto,
			Rating:       4.9,
			ServiceType:  entity.ServiceHouseCleaning,
			Distance:     "0.8 km",
			Price:        "₹300/hour",
			Verified:     true,
			Availability: entity.AvailableTomorrow,
		},
		{
			ID:           3,
			Name:         "Mohammed Ali",
			Photo:        fallbackPhoto,
			Rating:       4.7,
			ServiceType:  entity.ServiceElectrician,
			Distance:     "2.1 km",
			Price:        "₹400/hour",
			Verified:     true,
			Availability: entity.AvailableToday,
		},
		{
			ID:           4,
			Name:         "Sunita Devi",
			Photo:        fallbackPhoto,
			Rating:       4.6,
			ServiceType:  entity.ServiceMaid,
			Distance:     "1.5 km",
			Price:        "₹250/hour",
			Verified:     false,
			Availability: entity.AvailableToday,
		},
	}
}
