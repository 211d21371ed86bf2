package domain

// Tier is a club's membership classification level.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
	TierElite   Tier = "elite"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierElite:
		return true
	}
	return false
}

// Coordinates are WGS-84 degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	City        string       `json:"city"`
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ClubService is a bookable offering (court rental, coaching, equipment...).
type ClubService struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type Rating struct {
	Value float64 `json:"value"` // 0..5
	Count int     `json:"count"`
}

type Members struct {
	Total  int     `json:"total"`
	Growth float64 `json:"growth"`
}

type Occupancy struct {
	Average float64 `json:"average"`
}

type Stats struct {
	Rating    Rating    `json:"rating"`
	Members   Members   `json:"members"`
	Occupancy Occupancy `json:"occupancy"`
}

type Status struct {
	IsOpen     bool   `json:"isOpen"`
	StatusText string `json:"statusText"`
}

// Club is the read-only projection the discovery pipeline consumes.
type Club struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Tier        Tier          `json:"tier"`
	Location    Location      `json:"location"`
	Features    []string      `json:"features"`
	Services    []ClubService `json:"services"`
	Stats       Stats         `json:"stats"`
	Status      Status        `json:"status"`
	Verified    bool          `json:"verified"`
	Highlights  []string      `json:"highlights"`
	RawJSON     []byte        `json:"-"` // full directory payload
}

func (c Club) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}

// ServiceAvailable reports whether the club offers the service and it is
// currently bookable.
func (c Club) ServiceAvailable(id string) bool {
	for _, s := range c.Services {
		if s.ID == id {
			return s.Available
		}
	}
	return false
}
