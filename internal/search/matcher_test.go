package search_test

import (
	"testing"

	"padelyzer/internal/domain"
	"padelyzer/internal/search"
)

func club(id, name string, opts ...func(*domain.Club)) domain.Club {
	c := domain.Club{
		ID:   id,
		Name: name,
		Tier: domain.TierBasic,
		Location: domain.Location{
			City: "Madrid",
		},
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func withCity(city string) func(*domain.Club) {
	return func(c *domain.Club) { c.Location.City = city }
}

func withRating(v float64) func(*domain.Club) {
	return func(c *domain.Club) { c.Stats.Rating.Value = v }
}

func testClubs() []domain.Club {
	return []domain.Club{
		club("c1", "Club Padel Madrid", withRating(4.8)),
		club("c2", "Club Deportivo", withRating(3.2)),
		club("c3", "Barcelona Indoor Padel", withCity("Barcelona"), withRating(4.1)),
	}
}

func TestMatchEmptyQueryPassThrough(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	clubs := testClubs()

	for _, q := range []string{"", "   ", "p"} {
		out := m.Match(q, clubs)
		if len(out) != len(clubs) {
			t.Fatalf("query %q: expected %d clubs, got %d", q, len(clubs), len(out))
		}
		for i := range out {
			if out[i].Club.ID != clubs[i].ID {
				t.Fatalf("query %q: input order not preserved at %d", q, i)
			}
			if out[i].Score != 0 {
				t.Fatalf("query %q: expected unscored pass-through, got score %f", q, out[i].Score)
			}
		}
	}
}

func TestMatchTypoTolerance(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	clubs := testClubs()

	out := m.Match("padl", clubs)
	if len(out) == 0 {
		t.Fatal("typo query 'padl' should still match padel clubs")
	}
	found := false
	for _, s := range out {
		if s.Club.ID == "c1" {
			found = true
			if s.Score <= 0 {
				t.Fatalf("fuzzy hit should carry a positive score, got %f", s.Score)
			}
		}
	}
	if !found {
		t.Fatal("expected Club Padel Madrid in results for 'padl'")
	}
}

func TestMatchGarbageQueryReturnsNothing(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	if out := m.Match("xyz123", testClubs()); len(out) != 0 {
		t.Fatalf("expected zero matches for garbage query, got %d", len(out))
	}
}

func TestMatchFieldWeighting(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	clubs := []domain.Club{
		// same text, different field: a name hit must outrank a feature hit
		{ID: "feat", Name: "Riverside Sports", Features: []string{"padel"}},
		{ID: "name", Name: "Padel Central"},
	}

	out := m.Match("padel", clubs)
	if len(out) != 2 {
		t.Fatalf("expected both clubs to match, got %d", len(out))
	}
	if out[0].Club.ID != "name" {
		t.Fatalf("name match should rank before feature match, got %s first", out[0].Club.ID)
	}
	if out[0].Field != "name" {
		t.Fatalf("expected best field 'name', got %q", out[0].Field)
	}
}

func TestMatchCityField(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	out := m.Match("barcelona", testClubs())
	if len(out) == 0 || out[0].Club.ID != "c3" {
		t.Fatalf("expected Barcelona club first, got %+v", out)
	}
}

func TestMatchPositionsForHighlighting(t *testing.T) {
	m := search.NewFuzzyMatcher(search.DefaultWeights())
	out := m.Match("padel", testClubs())
	if len(out) == 0 {
		t.Fatal("expected matches")
	}
	if len(out[0].Positions) == 0 {
		t.Fatal("subsequence hit should expose matched positions")
	}
}
