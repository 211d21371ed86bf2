package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"padelyzer/internal/domain"
)

type IngestionService struct {
	dir   domain.DirectoryClient
	repo  domain.ClubRepository
	cache domain.Cache
}

func NewIngestionService(d domain.DirectoryClient, r domain.ClubRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{dir: d, repo: r, cache: cache}
}

// IngestClub pulls one club from the directory and upserts it. Known 404 and
// 401/403 responses are recorded as misses and end the ingest gracefully;
// anything else (network, 5xx after retries, bad JSON) bubbles up.
func (s *IngestionService) IngestClub(ctx context.Context, id string) error {
	payload, err := s.dir.GetClub(ctx, id)
	if err != nil {
		low := strings.ToLower(err.Error())

		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, id, 404, "not found")
			s.invalidate(ctx, id)
			return nil
		}
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, id, 403, "inactive")
			s.invalidate(ctx, id)
			return nil
		}
		return err
	}

	club, err := mapClub(id, payload)
	if err != nil {
		return fmt.Errorf("map club %s: %w", id, err)
	}
	if err := s.repo.UpsertClub(ctx, club); err != nil {
		return fmt.Errorf("upsert club %s: %w", id, err)
	}
	s.invalidate(ctx, id)
	return nil
}

// invalidate drops the per-club cache entry and bumps the search epoch so
// every cached search result built on the old collection stops matching.
func (s *IngestionService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, "club:"+id)
	_ = s.cache.Set(ctx, epochKey, time.Now().UnixNano(), 0)
}
