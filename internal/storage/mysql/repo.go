package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"padelyzer/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertClub(ctx context.Context, c domain.Club) error {
	features, _ := json.Marshal(orEmpty(c.Features))
	services, _ := json.Marshal(c.Services)
	stats, _ := json.Marshal(c.Stats)
	highlights, _ := json.Marshal(orEmpty(c.Highlights))

	var lat, lng any
	if c.Location.Coordinates != nil {
		lat = c.Location.Coordinates.Lat
		lng = c.Location.Coordinates.Lng
	}

	_, err := r.db.ExecContext(ctx, upsertClubSQL,
		c.ID,
		c.Name,
		c.Description,
		string(c.Tier),
		nullStr(c.Location.City),
		nullStr(c.Location.Address),
		lat,
		lng,
		string(features),
		string(services),
		string(stats),
		c.Status.IsOpen,
		nullStr(c.Status.StatusText),
		c.Verified,
		string(highlights),
		valJSON(c.RawJSON),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id string, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) GetClub(ctx context.Context, id string) (domain.Club, error) {
	row := r.db.QueryRowContext(ctx, getClubSQL, id)
	c, err := scanClub(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Club{}, domain.ErrNotFound
	}
	return c, err
}

func (r *Repo) ListClubs(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, listClubsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Club
	for rows.Next() {
		c, err := scanClub(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// scanClub decodes one club row; works for both QueryRow and Rows scanners.
func scanClub(scan func(...any) error) (domain.Club, error) {
	var c domain.Club
	var desc, city, address, statusText sql.NullString
	var lat, lng sql.NullFloat64
	var tier string
	var featuresJSON, servicesJSON, statsJSON, highlightsJSON []byte

	if err := scan(
		&c.ID, &c.Name, &desc, &tier, &city, &address, &lat, &lng,
		&featuresJSON, &servicesJSON, &statsJSON,
		&c.Status.IsOpen, &statusText, &c.Verified, &highlightsJSON,
	); err != nil {
		return domain.Club{}, err
	}

	c.Description = desc.String
	c.Tier = domain.Tier(tier)
	c.Location.City = city.String
	c.Location.Address = address.String
	if lat.Valid && lng.Valid {
		c.Location.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	c.Status.StatusText = statusText.String
	_ = json.Unmarshal(featuresJSON, &c.Features)
	_ = json.Unmarshal(servicesJSON, &c.Services)
	_ = json.Unmarshal(statsJSON, &c.Stats)
	_ = json.Unmarshal(highlightsJSON, &c.Highlights)
	return c, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

// orEmpty keeps JSON columns as [] instead of null for empty slices.
func orEmpty(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
