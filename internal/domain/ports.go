package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

type ClubRepository interface {
	// Write paths
	UpsertClub(ctx context.Context, c Club) error
	LogMiss(ctx context.Context, id string, status int, reason string) error

	// Read paths
	GetClub(ctx context.Context, id string) (Club, error)
	// ListClubs returns the full collection; the discovery pipeline runs
	// in-process over an immutable snapshot per invocation.
	ListClubs(ctx context.Context) ([]Club, error)
}

// DirectoryClient talks to the upstream club directory.
type DirectoryClient interface {
	GetClub(ctx context.Context, id string) (map[string]any, error)
	ListClubIDs(ctx context.Context) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
