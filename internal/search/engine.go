// Package search implements the club discovery pipeline: a free-text fuzzy
// matcher, a conjunctive filter evaluator, a stable sorter, and a view-mode
// aware presentation adapter. Every stage is a pure function over its input
// plus a Params value; a run never mutates the club collection.
package search

import (
	"context"
	"strings"

	"padelyzer/internal/domain"
)

// Params is the full configuration of one pipeline run.
type Params struct {
	Query   string               `json:"query"`
	Filters domain.SearchFilters `json:"filters"`
	Sort    SortKey              `json:"sort"`
	Order   SortOrder            `json:"order"`
	View    ViewMode             `json:"view"`
	Origin  *domain.Coordinates  `json:"origin,omitempty"` // user location
}

// Result is the output of one completed run.
type Result struct {
	Items      []Item               `json:"items"`
	Total      int                  `json:"total"`
	Query      string               `json:"query"`
	Filters    domain.SearchFilters `json:"filters"`
	Sort       SortKey              `json:"sort"`
	Order      SortOrder            `json:"order"`
	EmptyState EmptyState           `json:"emptyState,omitempty"`
	// ShortQuery flags a non-empty query below MinQueryLen so the UI can ask
	// for more characters instead of pretending the unscored results are
	// precise.
	ShortQuery bool `json:"shortQuery,omitempty"`
}

// Clubs unwraps the shaped items back to plain clubs, in result order.
func (r Result) Clubs() []domain.Club {
	out := make([]domain.Club, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Club
	}
	return out
}

// Engine runs the pipeline. The matcher is injected so the concrete fuzzy
// library stays swappable without touching filter or sort logic.
type Engine struct {
	matcher Matcher
}

func NewEngine(m Matcher) *Engine {
	if m == nil {
		m = NewFuzzyMatcher(DefaultWeights())
	}
	return &Engine{matcher: m}
}

// Run executes matcher -> filter -> sort -> shaping synchronously. It is
// total over well-typed inputs: the only possible error is ctx cancellation,
// checked between stages so a superseded run on a large collection stops
// early instead of burning CPU.
func (e *Engine) Run(ctx context.Context, clubs []domain.Club, p Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	scored := e.matcher.Match(p.Query, clubs)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	kept := Filter(scored, p.Filters, p.Origin)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !p.Sort.Valid() {
		p.Sort = SortRelevance
	}
	if !p.Order.Valid() {
		p.Order = p.Sort.NaturalOrder()
	}
	Sort(kept, p.Sort, p.Order, p.Origin)

	if !p.View.Valid() {
		p.View = ViewGrid
	}
	res := Result{
		Items:   shapeItems(kept, p.View, p.Origin),
		Total:   len(kept),
		Query:   p.Query,
		Filters: p.Filters,
		Sort:    p.Sort,
		Order:   p.Order,
	}
	q := strings.TrimSpace(p.Query)
	if len(kept) == 0 {
		if q == "" {
			res.EmptyState = EmptyStateNoQuery
		} else {
			res.EmptyState = EmptyStateNoMatches
		}
	}
	res.ShortQuery = q != "" && len([]rune(q)) < MinQueryLen
	return res, nil
}
