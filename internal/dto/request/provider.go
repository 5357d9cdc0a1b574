package request

type LoadCatalogRequest struct {
	Results int `json:"results" validate:"min=1,max=100"`
}

type LocationRequest struct {
	Name  string `json:"name" validate:"required"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// PriceRangeRequest may carry one bound or none; a missing side keeps its default.
type PriceRangeRequest struct {
	Min *int `json:"min,omitempty" validate:"omitempty,gte=0"`
	Max *int `json:"max,omitempty" validate:"omitempty,gte=0"`
}

type FilterProvidersRequest struct {
	Location     *LocationRequest   `json:"location,omitempty" validate:"omitempty"`
	ServiceTypes []string           `json:"service_types" validate:"omitempty,dive,required"`
	MinRating    *float64           `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	PriceRange   *PriceRangeRequest `json:"price_range,omitempty" validate:"omitempty"`
	Availability []string           `json:"availability" validate:"omitempty,dive,required"`
}
