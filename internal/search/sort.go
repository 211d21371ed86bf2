package search

import (
	"math"
	"sort"
	"strings"

	"padelyzer/internal/domain"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortRating    SortKey = "rating"
	SortMembers   SortKey = "members"
	SortDistance  SortKey = "distance"
	SortName      SortKey = "name"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortRelevance, SortRating, SortMembers, SortDistance, SortName:
		return true
	}
	return false
}

// NaturalOrder is the direction a key starts in when freshly selected:
// rating and members show the biggest first, relevance and distance the
// closest match first, name alphabetical.
func (k SortKey) NaturalOrder() SortOrder {
	switch k {
	case SortRating, SortMembers:
		return OrderDesc
	default:
		return OrderAsc
	}
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool { return o == OrderAsc || o == OrderDesc }

func (o SortOrder) Flip() SortOrder {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// Toggle implements the sort selector semantics: re-selecting the current key
// flips the order, selecting a new key resets to its natural direction.
func Toggle(key SortKey, order SortOrder, selected SortKey) (SortKey, SortOrder) {
	if selected == key {
		return key, order.Flip()
	}
	return selected, selected.NaturalOrder()
}

// Sort orders candidates in place by the selected key. The sort is stable and
// ties fall back to rating (for relevance), then name, then ID, so repeated
// runs over the same input produce identical orderings.
func Sort(items []Scored, key SortKey, order SortOrder, origin *domain.Coordinates) {
	if !key.Valid() {
		key = SortRelevance
	}
	if !order.Valid() {
		order = key.NaturalOrder()
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j], key, origin)
		if c == 0 {
			return false // stable: leave ties in place, tieBreak already applied
		}
		if order == OrderDesc {
			return c > 0
		}
		return c < 0
	})
}

// compare returns <0 when a ranks before b under the key's ascending order.
func compare(a, b Scored, key SortKey, origin *domain.Coordinates) int {
	switch key {
	case SortRating:
		if c := cmpFloat(a.Club.Stats.Rating.Value, b.Club.Stats.Rating.Value); c != 0 {
			return c
		}
	case SortMembers:
		if a.Club.Stats.Members.Total != b.Club.Stats.Members.Total {
			if a.Club.Stats.Members.Total < b.Club.Stats.Members.Total {
				return -1
			}
			return 1
		}
	case SortDistance:
		da, db := distanceTo(origin, a.Club), distanceTo(origin, b.Club)
		// Clubs without coordinates always sort after located ones;
		// unlocated pairs fall through to the name tie-break.
		if !math.IsNaN(da) && !math.IsNaN(db) {
			if c := cmpFloat(da, db); c != 0 {
				return c
			}
		} else if math.IsNaN(da) != math.IsNaN(db) {
			if math.IsNaN(da) {
				return 1 // located clubs first
			}
			return -1
		}
	case SortName:
		if c := strings.Compare(strings.ToLower(a.Club.Name), strings.ToLower(b.Club.Name)); c != 0 {
			return c
		}
	default: // relevance
		if c := cmpFloat(a.Score, b.Score); c != 0 {
			return c
		}
		// Equal match scores: better-rated club first.
		if c := cmpFloat(b.Club.Stats.Rating.Value, a.Club.Stats.Rating.Value); c != 0 {
			return c
		}
	}
	return tieBreak(a.Club, b.Club)
}

func tieBreak(a, b domain.Club) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
