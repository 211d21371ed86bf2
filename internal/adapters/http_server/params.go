package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"padelyzer/internal/domain"
	"padelyzer/internal/search"
)

// parseSearchParams maps query-string parameters onto a pipeline Params.
// Structural errors (unparseable numbers, unknown enums) are rejected with
// 400; semantically odd but well-typed values pass through, the pipeline is
// total over them.
func parseSearchParams(r *http.Request) (search.Params, error) {
	q := r.URL.Query()
	p := search.Params{Query: q.Get("q")}

	for _, t := range splitCSV(q.Get("tier")) {
		tier := domain.Tier(strings.ToLower(t))
		if !tier.Valid() {
			return search.Params{}, fmt.Errorf("unknown tier %q", t)
		}
		p.Filters.Tiers = append(p.Filters.Tiers, tier)
	}
	p.Filters.Features = splitCSV(q.Get("features"))
	p.Filters.Services = splitCSV(q.Get("services"))

	var err error
	if p.Filters.MinRating, err = parseFloat(q.Get("min_rating")); err != nil {
		return search.Params{}, fmt.Errorf("min_rating: %w", err)
	}
	if p.Filters.MaxDistanceKm, err = parseFloat(q.Get("max_distance_km")); err != nil {
		return search.Params{}, fmt.Errorf("max_distance_km: %w", err)
	}
	if s := q.Get("min_members"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return search.Params{}, fmt.Errorf("min_members: %w", err)
		}
		p.Filters.MinMembers = n
	}
	if s := q.Get("verified"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return search.Params{}, fmt.Errorf("verified: %w", err)
		}
		p.Filters.Verified = &b
	}
	if s := q.Get("availability"); s != "" {
		a := domain.Availability(s)
		if !a.Valid() {
			return search.Params{}, fmt.Errorf("unknown availability %q", s)
		}
		p.Filters.Availability = a
	}

	latS, lngS := q.Get("lat"), q.Get("lng")
	if (latS == "") != (lngS == "") {
		return search.Params{}, fmt.Errorf("lat and lng must be supplied together")
	}
	if latS != "" {
		lat, err := parseFloat(latS)
		if err != nil {
			return search.Params{}, fmt.Errorf("lat: %w", err)
		}
		lng, err := parseFloat(lngS)
		if err != nil {
			return search.Params{}, fmt.Errorf("lng: %w", err)
		}
		p.Origin = &domain.Coordinates{Lat: lat, Lng: lng}
	}

	if s := q.Get("sort"); s != "" {
		k := search.SortKey(s)
		if !k.Valid() {
			return search.Params{}, fmt.Errorf("unknown sort key %q", s)
		}
		p.Sort = k
	}
	if s := q.Get("order"); s != "" {
		o := search.SortOrder(s)
		if !o.Valid() {
			return search.Params{}, fmt.Errorf("unknown sort order %q", s)
		}
		p.Order = o
	}
	if s := q.Get("view"); s != "" {
		v := search.ViewMode(s)
		if !v.Valid() {
			return search.Params{}, fmt.Errorf("unknown view mode %q", s)
		}
		p.View = v
	}
	return p, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
