package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "padelyzer/internal/adapters/redis"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	var got payload
	ok, err := cache.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := cache.Set(ctx, "k", payload{Name: "padel", Score: 7}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	ok, err = cache.Get(ctx, "k", &got)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if got.Name != "padel" || got.Score != 7 {
		t.Fatalf("unexpected payload: %+v", got)
	}

	if err := cache.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ = cache.Get(ctx, "k", &got); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCacheSetNoExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := cache.Set(ctx, "pin", 42, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if mr.TTL("pin") != 0 {
		t.Fatalf("expected no TTL, got %v", mr.TTL("pin"))
	}
}
