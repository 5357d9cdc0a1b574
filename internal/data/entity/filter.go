package entity

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

type Location struct {
	Name  string `json:"name"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterSpec narrows a provider catalog. An empty slice means no restriction on
// that dimension.
type FilterSpec struct {
	Location     *Location      `json:"location,omitempty"`
	ServiceTypes []ServiceType  `json:"serviceTypes"`
	MinRating    *float64       `json:"minRating,omitempty"`
	PriceRange   PriceRange     `json:"priceRange"`
	Availability []Availability `json:"availability"`
}

func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
	}
}
