package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"padelyzer/internal/domain"
)

/********** alias registries (single source of truth) **********/

// The directory payload shape has drifted across backend versions; these
// alias sets cover the variants seen in the wild.
var clubAliases = map[string][]string{
	"name":        {"name", "club_name", "title"},
	"description": {"description", "about", "summary"},
	"tier":        {"tier", "plan", "subscription.tier", "membership_level"},
	"city":        {"location.city", "city", "address.city"},
	"address":     {"location.address", "address", "address.line", "full_address"},
	"status_text": {"status.statusText", "status.text", "status_label"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAlias: first non-empty string across an alias set.
func firstAlias(m map[string]any, key string) string {
	for _, p := range clubAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// lookupFloat: number from several paths (float64/int/string like "4,8").
func lookupFloat(m map[string]any, paths ...string) (float64, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func lookupBool(m map[string]any, paths ...string) (bool, bool) {
	for _, k := range paths {
		if b, ok := lookupAny(m, k).(bool); ok {
			return b, true
		}
	}
	return false, false
}

func lookupStrings(m map[string]any, path string) []string {
	arr, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

/********** mapping **********/

func mapClub(id string, m map[string]any) (domain.Club, error) {
	name := firstAlias(m, "name")
	if name == "" {
		return domain.Club{}, fmt.Errorf("payload has no club name")
	}

	c := domain.Club{
		ID:          id,
		Name:        name,
		Description: firstAlias(m, "description"),
		Tier:        mapTier(firstAlias(m, "tier")),
		Location: domain.Location{
			City:    firstAlias(m, "city"),
			Address: firstAlias(m, "address"),
		},
		Features:   lookupStrings(m, "features"),
		Highlights: lookupStrings(m, "highlights"),
	}

	lat, okLat := lookupFloat(m, "location.coordinates.lat", "coordinates.lat", "lat")
	lng, okLng := lookupFloat(m, "location.coordinates.lng", "coordinates.lng", "lng", "lon")
	if okLat && okLng {
		c.Location.Coordinates = &domain.Coordinates{Lat: lat, Lng: lng}
	}

	if v, ok := lookupFloat(m, "stats.rating.value", "rating.value", "rating"); ok {
		c.Stats.Rating.Value = clamp(v, 0, 5)
	}
	if v, ok := lookupFloat(m, "stats.rating.count", "rating.count", "review_count"); ok {
		c.Stats.Rating.Count = int(v)
	}
	if v, ok := lookupFloat(m, "stats.members.total", "members.total", "members"); ok && v >= 0 {
		c.Stats.Members.Total = int(v)
	}
	if v, ok := lookupFloat(m, "stats.members.growth", "members.growth"); ok {
		c.Stats.Members.Growth = v
	}
	if v, ok := lookupFloat(m, "stats.occupancy.average", "occupancy.average", "occupancy"); ok {
		c.Stats.Occupancy.Average = v
	}

	if b, ok := lookupBool(m, "status.isOpen", "status.is_open", "is_open"); ok {
		c.Status.IsOpen = b
	}
	c.Status.StatusText = firstAlias(m, "status_text")
	if b, ok := lookupBool(m, "verified", "is_verified"); ok {
		c.Verified = b
	}

	if arr, ok := lookupAny(m, "services").([]any); ok {
		for _, v := range arr {
			sm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			svc := domain.ClubService{
				ID:   lookupStr(sm, "id"),
				Name: lookupStr(sm, "name"),
			}
			if b, ok := lookupBool(sm, "available", "is_available"); ok {
				svc.Available = b
			}
			if svc.ID != "" || svc.Name != "" {
				c.Services = append(c.Services, svc)
			}
		}
	}

	c.RawJSON, _ = json.Marshal(m)
	return c, nil
}

// mapTier normalizes the tier value; anything unrecognized becomes basic
// rather than failing the whole ingest.
func mapTier(s string) domain.Tier {
	t := domain.Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}
	return domain.TierBasic
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
