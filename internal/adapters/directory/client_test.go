package directory_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"padelyzer/internal/adapters/directory"
)

func TestClient_GetClub_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "Club Padel Madrid"})
		}
	}))
	defer ts.Close()

	cl, err := directory.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.GetClub(ctx, "club-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["name"] != "Club Padel Madrid" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_GetClub_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := directory.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.GetClub(ctx, "ghost")
	if !errors.Is(err, directory.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_RequiresAPIKey(t *testing.T) {
	if _, err := directory.New("http://localhost", "", 5); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestClient_ListClubIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			w.WriteHeader(401)
			return
		}
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "club-1"},
			{"id": 42.0}, // legacy numeric IDs still appear
		})
	}))
	defer ts.Close()

	cl, err := directory.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ids, err := cl.ListClubIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 2 || ids[0] != "club-1" || ids[1] != "42" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
