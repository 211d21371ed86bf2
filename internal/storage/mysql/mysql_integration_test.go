//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"

	"padelyzer/internal/domain"
	mysqlrepo "padelyzer/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest pool: %v", err)
	}
	res, err := pool.Run("mysql", "8.0", []string{
		"MYSQL_ROOT_PASSWORD=root",
		"MYSQL_DATABASE=padelyzer",
	})
	if err != nil {
		t.Fatalf("start mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(res) })

	dsn := fmt.Sprintf("root:root@tcp(localhost:%s)/padelyzer?parseTime=true", res.GetPort("3306/tcp"))
	var db *sql.DB
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		var err error
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return err
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("mysql never became ready: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range strings.Split(mysqlrepo.SchemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return db
}

func sampleClub(id string) domain.Club {
	return domain.Club{
		ID:          id,
		Name:        "Club Padel Madrid",
		Description: "Premier padel facility",
		Tier:        domain.TierElite,
		Location: domain.Location{
			City:        "Madrid",
			Address:     "Calle del Padel 1",
			Coordinates: &domain.Coordinates{Lat: 40.4168, Lng: -3.7038},
		},
		Features: []string{"parking", "indoor"},
		Services: []domain.ClubService{
			{ID: "court-rental", Name: "Court rental", Available: true},
		},
		Stats: domain.Stats{
			Rating:  domain.Rating{Value: 4.8, Count: 200},
			Members: domain.Members{Total: 500, Growth: 2.5},
		},
		Status:     domain.Status{IsOpen: true, StatusText: "Open until 23:00"},
		Verified:   true,
		Highlights: []string{"Champions league venue"},
	}
}

func TestRepoRoundTrip(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	want := sampleClub("club-1")
	if err := repo.UpsertClub(ctx, want); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetClub(ctx, "club-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != want.Name || got.Tier != want.Tier || !got.Verified {
		t.Fatalf("unexpected club: %+v", got)
	}
	if got.Location.Coordinates == nil || got.Location.Coordinates.Lat != want.Location.Coordinates.Lat {
		t.Fatalf("coordinates lost: %+v", got.Location)
	}
	if len(got.Features) != 2 || len(got.Services) != 1 || !got.Services[0].Available {
		t.Fatalf("JSON columns lost: %+v", got)
	}
	if got.Stats.Members.Total != 500 || got.Stats.Rating.Value != 4.8 {
		t.Fatalf("stats lost: %+v", got.Stats)
	}

	// upsert overwrites in place
	want.Name = "Club Padel Madrid Norte"
	want.Status.IsOpen = false
	if err := repo.UpsertClub(ctx, want); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.GetClub(ctx, "club-1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Club Padel Madrid Norte" || got.Status.IsOpen {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestRepoListClubs(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for _, id := range []string{"club-b", "club-a", "club-c"} {
		c := sampleClub(id)
		if err := repo.UpsertClub(ctx, c); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	clubs, err := repo.ListClubs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clubs) != 3 {
		t.Fatalf("expected 3 clubs, got %d", len(clubs))
	}
	// deterministic order by id for stable pipeline input
	if clubs[0].ID != "club-a" || clubs[2].ID != "club-c" {
		t.Fatalf("unexpected order: %s %s %s", clubs[0].ID, clubs[1].ID, clubs[2].ID)
	}
}

func TestRepoGetClubNotFound(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	if _, err := repo.GetClub(context.Background(), "ghost"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepoLogMiss(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	if err := repo.LogMiss(context.Background(), "ghost", 404, "not found"); err != nil {
		t.Fatalf("log miss: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ingest_misses WHERE club_id='ghost'`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 miss, got %d", n)
	}
}
