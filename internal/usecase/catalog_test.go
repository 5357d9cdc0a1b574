package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"localserve/internal/data/entity"
	"localserve/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchCatalog_LowerBounds(t *testing.T) {
	source := &stubIdentitySource{identities: identities(2)}
	loader := NewCatalogLoader(source, &seqRandom{values: []float64{0}}, zap.NewNop())

	result := loader.FetchCatalog(context.Background(), 20)

	assert.Equal(t, 20, source.requested)
	assert.False(t, result.Fallback)
	assert.Empty(t, result.Message)
	require.Len(t, result.Providers, 2)
	assert.Equal(t, entity.Provider{
		ID:           1,
		Name:         "First1 Last1",
		Photo:        "https://img/1.jpg",
		Phone:        "555-0001",
		Rating:       4.3,
		ServiceType:  entity.ServiceCarpenter,
		Distance:     "0.5 km",
		Price:        "₹250/hour",
		Verified:     false,
		Availability: entity.AvailableToday,
	}, result.Providers[0])
	assert.Equal(t, 2, result.Providers[1].ID)
}

func TestFetchCatalog_UpperBounds(t *testing.T) {
	source := &stubIdentitySource{identities: identities(1)}
	loader := NewCatalogLoader(source, &seqRandom{values: []float64{0.999}}, zap.NewNop())

	p := loader.FetchCatalog(context.Background(), 1).Providers[0]

	assert.Equal(t, 5.0, p.Rating)
	assert.Equal(t, entity.ServiceHouseShifting, p.ServiceType)
	assert.Equal(t, "3.5 km", p.Distance)
	assert.Equal(t, "₹699/hour", p.Price)
	assert.True(t, p.Verified)
	assert.Equal(t, entity.AvailableThisWeek, p.Availability)
}

func TestFetchCatalog_AttributesStayInRange(t *testing.T) {
	source := &stubIdentitySource{identities: identities(50)}
	loader := NewCatalogLoader(source, NewRandomSource(), zap.NewNop())

	result := loader.FetchCatalog(context.Background(), 50)
	require.Len(t, result.Providers, 50)

	for _, p := range result.Providers {
		assert.GreaterOrEqual(t, p.Rating, 4.3)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.Contains(t, entity.ServiceTypes, p.ServiceType)
		assert.Contains(t, entity.CatalogAvailability, p.Availability)
		assert.True(t, strings.HasSuffix(p.Distance, " km"))

		price := utils.ExtractDigits(p.Price)
		assert.GreaterOrEqual(t, price, 250)
		assert.Less(t, price, 700)
		assert.Equal(t, fmt.Sprintf("₹%d/hour", price), p.Price)
	}
}

func TestFetchCatalog_FailureFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		source *stubIdentitySource
	}{
		{"network error", &stubIdentitySource{err: errors.New("dial tcp: timeout")}},
		{"empty results", &stubIdentitySource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewCatalogLoader(tt.source, NewRandomSource(), zap.NewNop())

			result := loader.FetchCatalog(context.Background(), 20)

			assert.True(t, result.Fallback)
			assert.Equal(t, CatalogLoadFailedMessage, result.Message)
			require.Len(t, result.Providers, 4)
			for _, p := range result.Providers {
				assert.NotEmpty(t, p.Name)
				assert.GreaterOrEqual(t, p.Rating, 4.0)
				assert.LessOrEqual(t, p.Rating, 5.0)
			}
			assert.Equal(t, "Rajesh Kumar", result.Providers[0].Name)
			assert.Equal(t, "Sunita Devi", result.Providers[3].Name)
			assert.False(t, result.Providers[3].Verified)
		})
	}
}

func TestFetchRecommendations(t *testing.T) {
	source := &stubIdentitySource{identities: identities(3)}
	loader := NewCatalogLoader(source, &seqRandom{values: []float64{0}}, zap.NewNop())

	got := loader.FetchRecommendations(context.Background(), 3)

	assert.Equal(t, 3, source.requested)
	require.Len(t, got, 3)
	assert.Equal(t, entity.ServiceElectrician, got[0].Service)
	assert.Equal(t, entity.ServiceHouseCleaning, got[1].Service)
	assert.Equal(t, entity.ServiceCarpenter, got[2].Service)
	assert.Equal(t, entity.RecommendedProvider{
		Name:           "First1 Last1",
		Service:        entity.ServiceElectrician,
		Rating:         4.5,
		Distance:       "1.0 km",
		Photo:          "https://img/1.jpg",
		Price:          "₹300/hr",
		Availability:   entity.AvailableNow,
		Verified:       false,
		CompletedJobs:  50,
		ResponseTime:   "15 min",
		Phone:          "555-0001",
		Experience:     "3 years",
		Specialization: "Residential",
	}, got[0])
}

func TestFetchRecommendations_FailureIsEmpty(t *testing.T) {
	loader := NewCatalogLoader(&stubIdentitySource{err: errors.New("boom")}, NewRandomSource(), zap.NewNop())

	got := loader.FetchRecommendations(context.Background(), 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
