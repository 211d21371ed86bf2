package search

import (
	"math"

	"padelyzer/internal/domain"
)

// Filter keeps the candidates satisfying every active predicate. Inactive
// predicates (zero values) never exclude anyone; all checks are null-safe.
func Filter(in []Scored, f domain.SearchFilters, origin *domain.Coordinates) []Scored {
	out := make([]Scored, 0, len(in))
	for _, s := range in {
		if Satisfies(s.Club, f, origin) {
			out = append(out, s)
		}
	}
	return out
}

// Satisfies evaluates the conjunction of all active predicates for one club.
func Satisfies(c domain.Club, f domain.SearchFilters, origin *domain.Coordinates) bool {
	if len(f.Tiers) > 0 && !f.HasTier(c.Tier) {
		return false
	}
	for _, want := range f.Features {
		if !c.HasFeature(want) {
			return false
		}
	}
	for _, want := range f.Services {
		if !c.ServiceAvailable(want) {
			return false
		}
	}
	if f.MinRating > 0 && c.Stats.Rating.Value < f.MinRating {
		return false
	}
	if f.MinMembers > 0 && c.Stats.Members.Total < f.MinMembers {
		return false
	}
	if f.Verified != nil && c.Verified != *f.Verified {
		return false
	}
	switch f.Availability {
	case domain.AvailabilityOpen:
		if !c.Status.IsOpen {
			return false
		}
	case domain.AvailabilityToday:
		// Needs per-slot booking data; behaves like "all" for now.
	}
	if f.MaxDistanceKm > 0 && origin != nil {
		// Clubs without coordinates are deliberately never distance-filtered:
		// missing location data must not hide a club.
		if d := distanceTo(origin, c); !math.IsNaN(d) && d > f.MaxDistanceKm {
			return false
		}
	}
	return true
}
