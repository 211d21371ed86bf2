package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"padelyzer/internal/domain"
)

// MinQueryLen is the shortest query the matcher will attempt to score.
// Anything shorter passes the collection through unscored; the presentation
// layer is responsible for hinting "type more for precise results".
const MinQueryLen = 2

// noMatch is the penalty assigned to a field the query does not match at all.
const noMatch = 1.0

// Weights are the relative field weights for text matching. Higher weight
// makes a hit on that field rank better.
type Weights struct {
	Name        float64
	Description float64
	City        float64
	Address     float64
	Highlights  float64
	Services    float64
	Features    float64
}

func DefaultWeights() Weights {
	return Weights{
		Name:        3,
		Description: 2,
		City:        2,
		Address:     1,
		Highlights:  1.5,
		Services:    1,
		Features:    1,
	}
}

// Scored is a candidate annotated with match metadata. Score is
// distance-like: lower is better, 0 means unscored pass-through.
type Scored struct {
	Club      domain.Club
	Score     float64
	Field     string // field that produced the best score, "" when unscored
	Positions []int  // byte offsets of matched runes within that field's text
}

// Matcher turns a free-text query into a score-ordered candidate list.
// Implementations must treat the club slice as read-only.
type Matcher interface {
	Match(query string, clubs []domain.Club) []Scored
}

// FuzzyMatcher scores candidates with subsequence matching (sahilm/fuzzy)
// and falls back to word-level edit distance so small typos still hit.
type FuzzyMatcher struct {
	weights   Weights
	maxTypos  int
	threshold float64
}

func NewFuzzyMatcher(w Weights) *FuzzyMatcher {
	return &FuzzyMatcher{weights: w, maxTypos: 2, threshold: 0.6}
}

func (m *FuzzyMatcher) Match(query string, clubs []domain.Club) []Scored {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLen {
		// Identity pass-through, original order preserved.
		out := make([]Scored, len(clubs))
		for i, c := range clubs {
			out[i] = Scored{Club: c}
		}
		return out
	}

	out := make([]Scored, 0, len(clubs))
	for _, c := range clubs {
		if s, ok := m.score(q, c); ok {
			out = append(out, s)
		}
	}
	// Best match first; stable so equal scores keep collection order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

type field struct {
	name   string
	text   string
	weight float64
}

func clubFields(c domain.Club, w Weights) []field {
	fs := []field{
		{"name", c.Name, w.Name},
		{"description", c.Description, w.Description},
		{"city", c.Location.City, w.City},
		{"address", c.Location.Address, w.Address},
	}
	for _, h := range c.Highlights {
		fs = append(fs, field{"highlights", h, w.Highlights})
	}
	for _, s := range c.Services {
		fs = append(fs, field{"services", s.Name, w.Services})
	}
	for _, f := range c.Features {
		fs = append(fs, field{"features", f, w.Features})
	}
	return fs
}

func (m *FuzzyMatcher) score(q string, c domain.Club) (Scored, bool) {
	best := Scored{Club: c, Score: noMatch}
	for _, f := range clubFields(c, m.weights) {
		if f.text == "" || f.weight <= 0 {
			continue
		}
		pen, pos := m.fieldPenalty(q, strings.ToLower(f.text))
		if pen >= noMatch {
			continue
		}
		if ws := pen / f.weight; ws < best.Score {
			best.Score = ws
			best.Field = f.name
			best.Positions = pos
		}
	}
	if best.Score >= m.threshold {
		return Scored{}, false
	}
	return best, true
}

// fieldPenalty maps a query/field pair to [0,1): 0 is a perfect hit, noMatch
// means neither a subsequence match nor an edit within the typo budget.
func (m *FuzzyMatcher) fieldPenalty(q, text string) (float64, []int) {
	if res := fuzzy.Find(q, []string{text}); len(res) > 0 {
		s := res[0].Score
		if s < 0 {
			s = 0
		}
		return 1 / float64(2+s), res[0].MatchedIndexes
	}

	// No subsequence: tolerate up to maxTypos edits against any single word.
	best := noMatch
	for _, w := range strings.Fields(text) {
		d := levenshtein(q, w)
		if d > m.maxTypos {
			continue
		}
		if pen := float64(d) / float64(max(len(q), len(w))); pen < best {
			best = pen
		}
	}
	return best, nil
}
