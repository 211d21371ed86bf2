package search

import (
	"fmt"
	"math"
	"strings"

	"padelyzer/internal/domain"
)

// ViewMode only changes per-item display shaping, never membership or order.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

func (v ViewMode) Valid() bool { return v == ViewGrid || v == ViewList }

// EmptyState tells the renderer which empty-result message applies.
type EmptyState string

const (
	EmptyStateNone      EmptyState = ""           // results present
	EmptyStateNoQuery   EmptyState = "no_query"   // suggest adjusting filters
	EmptyStateNoMatches EmptyState = "no_matches" // suggest different terms
)

// Item is one shaped result row/card.
type Item struct {
	Club       domain.Club `json:"club"`
	Score      float64     `json:"score"`
	Field      string      `json:"matchedField,omitempty"`
	Positions  []int       `json:"matchedPositions,omitempty"`
	DistanceKm *float64    `json:"distanceKm,omitempty"`
	Display    Display     `json:"display"`
}

// Display is the view-mode-dependent card/row content.
type Display struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description,omitempty"` // list mode only
	Badges      []string `json:"badges"`
	RatingLabel string   `json:"ratingLabel"`
	OpenLabel   string   `json:"openLabel"`
	Highlights  []string `json:"highlights,omitempty"` // list mode only
}

func shapeItems(in []Scored, mode ViewMode, origin *domain.Coordinates) []Item {
	out := make([]Item, len(in))
	for i, s := range in {
		out[i] = shapeItem(s, mode, origin)
	}
	return out
}

func shapeItem(s Scored, mode ViewMode, origin *domain.Coordinates) Item {
	c := s.Club
	it := Item{
		Club:      c,
		Score:     s.Score,
		Field:     s.Field,
		Positions: s.Positions,
	}
	if d := distanceTo(origin, c); !math.IsNaN(d) {
		km := math.Round(d*10) / 10
		it.DistanceKm = &km
	}

	badges := []string{string(c.Tier)}
	if c.Verified {
		badges = append(badges, "verified")
	}
	it.Display = Display{
		Title:       c.Name,
		Subtitle:    c.Location.City,
		Badges:      badges,
		RatingLabel: fmt.Sprintf("%.1f (%d)", c.Stats.Rating.Value, c.Stats.Rating.Count),
		OpenLabel:   c.Status.StatusText,
	}
	if mode == ViewList {
		it.Display.Subtitle = joinNonBlank(c.Location.City, c.Location.Address)
		it.Display.Description = c.Description
		it.Display.Highlights = c.Highlights
	}
	return it
}

func joinNonBlank(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ", ")
}
