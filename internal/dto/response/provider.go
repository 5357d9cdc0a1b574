package response

import "localserve/internal/data/entity"

type ProviderResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Photo        string  `json:"photo"`
	Phone        string  `json:"phone,omitempty"`
	Rating       float64 `json:"rating"`
	ServiceType  string  `json:"service_type"`
	Distance     string  `json:"distance"`
	Price        string  `json:"price"`
	Verified     bool    `json:"verified"`
	Availability string  `json:"availability"`
}

type CatalogResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Total     int                `json:"total"`
	Fallback  bool               `json:"fallback"`
	Message   string             `json:"message,omitempty"`
}

type FilterProvidersResponse struct {
	Providers     []ProviderResponse `json:"providers"`
	Total         int                `json:"total"`
	ActiveFilters int                `json:"active_filters"`
}

type RecommendedProviderResponse struct {
	Name           string  `json:"name"`
	Service        string  `json:"service"`
	Rating         float64 `json:"rating"`
	Distance       string  `json:"distance"`
	Photo          string  `json:"photo"`
	Price          string  `json:"price"`
	Availability   string  `json:"availability"`
	Verified       bool    `json:"verified"`
	CompletedJobs  int     `json:"completed_jobs"`
	ResponseTime   string  `json:"response_time"`
	Phone          string  `json:"phone,omitempty"`
	Experience     string  `json:"experience"`
	Specialization string  `json:"specialization"`
}

// Helper converters
func ProviderToResponse(p entity.Provider) ProviderResponse {
	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		Photo:        p.Photo,
		Phone:        p.Phone,
		Rating:       p.Rating,
		ServiceType:  string(p.ServiceType),
		Distance:     p.Distance,
		Price:        p.Price,
		Verified:     p.Verified,
		Availability: string(p.Availability),
	}
}

func ProvidersToResponse(providers []entity.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, ProviderToResponse(p))
	}
	return out
}

func RecommendedToResponse(providers []entity.RecommendedProvider) []RecommendedProviderResponse {
	out := make([]RecommendedProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, RecommendedProviderResponse{
			Name:           p.Name,
			Service:        string(p.Service),
			Rating:         p.Rating,
			Distance:       p.Distance,
			Photo:          p.Photo,
			Price:          p.Price,
			Availability:   string(p.Availability),
			Verified:       p.Verified,
			CompletedJobs:  p.CompletedJobs,
			ResponseTime:   p.ResponseTime,
			Phone:          p.Phone,
			Experience:     p.Experience,
			Specialization: p.Specialization,
		})
	}
	return out
}
