package domain

// Availability narrows results by opening state.
type Availability string

const (
	AvailabilityAll  Availability = "all"
	AvailabilityOpen Availability = "open"
	// AvailabilityToday is accepted on the wire but currently filters the
	// same as AvailabilityAll; per-slot availability needs booking data this
	// service does not hold yet.
	AvailabilityToday Availability = "available_today"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAll, AvailabilityOpen, AvailabilityToday:
		return true
	}
	return false
}

// SearchFilters is the conjunctive predicate set applied to candidates.
// Zero values mean "no constraint". A fresh value is built per search; it is
// never mutated in place.
type SearchFilters struct {
	Tiers         []Tier       `json:"tiers,omitempty"`
	Features      []string     `json:"features,omitempty"`      // candidate must have ALL
	Services      []string     `json:"services,omitempty"`      // ALL must exist and be available
	MinRating     float64      `json:"minRating,omitempty"`
	MaxDistanceKm float64      `json:"maxDistanceKm,omitempty"` // only with a user location
	Availability  Availability `json:"availability,omitempty"`
	MinMembers    int          `json:"minMembers,omitempty"`
	Verified      *bool        `json:"verified,omitempty"` // nil = don't care
}

// Empty reports whether no predicate is active.
func (f SearchFilters) Empty() bool {
	return len(f.Tiers) == 0 && len(f.Features) == 0 && len(f.Services) == 0 &&
		f.MinRating == 0 && f.MaxDistanceKm == 0 && f.MinMembers == 0 &&
		f.Verified == nil &&
		(f.Availability == "" || f.Availability == AvailabilityAll)
}

func (f SearchFilters) HasTier(t Tier) bool {
	for _, x := range f.Tiers {
		if x == t {
			return true
		}
	}
	return false
}
