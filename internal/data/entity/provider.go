package entity

type ServiceType string

const (
	ServiceCarpenter     ServiceType = "Carpenter"
	ServiceHouseCleaning ServiceType = "House Cleaning"
	ServiceElectrician   ServiceType = "Electrician"
	ServiceMaid          ServiceType = "Maid Services"
	ServicePlumbing      ServiceType = "Plumbing"
	ServiceTileFlooring  ServiceType = "Tile & Flooring"
	ServiceGlassWork     ServiceType = "Glass & Aluminium Work"
	ServiceHouseShifting ServiceType = "House Shifting"
)

// ServiceTypes is the catalog's fixed set, in the order used for random selection.
var ServiceTypes = []ServiceType{
	ServiceCarpenter,
	ServiceHouseCleaning,
	ServiceElectrician,
	ServiceMaid,
	ServicePlumbing,
	ServiceTileFlooring,
	ServiceGlassWork,
	ServiceHouseShifting,
}

type Availability string

const (
	AvailableNow      Availability = "Available Now"
	AvailableToday    Availability = "Available Today"
	AvailableTomorrow Availability = "Available Tomorrow"
	AvailableThisWeek Availability = "Available This Week"
)

var CatalogAvailability = []Availability{
	AvailableToday,
	AvailableTomorrow,
	AvailableThisWeek,
}

var RecommendationAvailability = []Availability{
	AvailableNow,
	AvailableToday,
	AvailableTomorrow,
}

// Provider is regenerated on every catalog load and never mutated afterwards.
type Provider struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Photo        string       `json:"photo"`
	Phone        string       `json:"phone,omitempty"`
	Rating       float64      `json:"rating"`
	ServiceType  ServiceType  `json:"serviceType"`
	Distance     string       `json:"distance"`
	Price        string       `json:"price"`
	Verified     bool         `json:"verified"`
	Availability Availability `json:"availability"`
}

type RecommendedProvider struct {
	Name           string       `json:"name"`
	Service        ServiceType  `json:"service"`
	Rating         float64      `json:"rating"`
	Distance       string       `json:"distance"`
	Photo          string       `json:"photo"`
	Price          string       `json:"price"`
	Availability   Availability `json:"availability"`
	Verified       bool         `json:"verified"`
	CompletedJobs  int          `json:"completedJobs"`
	ResponseTime   string       `json:"responseTime"`
	Phone          string       `json:"phone,omitempty"`
	Experience     string       `json:"experience"`
	Specialization string       `json:"specialization"`
}

// Identity is a synthetic person returned by the external identity source.
type Identity struct {
	FirstName string
	LastName  string
	Photo     string
	Phone     string
}

func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}
