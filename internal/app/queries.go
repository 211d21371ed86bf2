package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"padelyzer/internal/domain"
	"padelyzer/internal/search"
)

// epochKey versions every cached search result; ingestion bumps it so stale
// search pages expire immediately instead of waiting out their TTL.
const epochKey = "search:epoch"

type QueryService struct {
	repo     domain.ClubRepository
	cache    domain.Cache
	engine   *search.Engine
	cacheTTL time.Duration
}

func NewQueryService(r domain.ClubRepository, c domain.Cache, e *search.Engine, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, engine: e, cacheTTL: ttl}
}

func (s *QueryService) GetClub(ctx context.Context, id string) (domain.Club, error) {
	key := "club:" + id
	var c domain.Club
	if ok, _ := s.cache.Get(ctx, key, &c); ok {
		return c, nil
	}
	c, err := s.repo.GetClub(ctx, id)
	if err != nil {
		return domain.Club{}, err
	}
	_ = s.cache.Set(ctx, key, c, int(s.cacheTTL.Seconds()))
	return c, nil
}

// Search loads the full club collection and runs the discovery pipeline over
// it. Results are cached per (params, epoch) so repeated identical queries
// skip both the repo scan and the pipeline.
func (s *QueryService) Search(ctx context.Context, p search.Params) (search.Result, error) {
	key := s.searchKey(ctx, p)
	var out search.Result
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	clubs, err := s.repo.ListClubs(ctx)
	if err != nil {
		return search.Result{}, err
	}
	out, err = s.engine.Run(ctx, clubs, p)
	if err != nil {
		return search.Result{}, err
	}

	// size guard: don't cache pathologically large result pages
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// searchKey hashes the full parameter set plus the current ingest epoch into
// a deterministic cache key.
func (s *QueryService) searchKey(ctx context.Context, p search.Params) string {
	var epoch int64
	_, _ = s.cache.Get(ctx, epochKey, &epoch)
	b, _ := json.Marshal(p)
	sum := sha1.Sum(b)
	return fmt.Sprintf("search:%d:%s", epoch, hex.EncodeToString(sum[:]))
}
