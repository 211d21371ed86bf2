// Package favorites holds per-user favorite clubs and custom club lists.
// State lives in an explicit container mutated only through action methods;
// every change is serialized to the injected key-value store immediately, so
// there is no ambient singleton and no deferred flush to lose.
package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"padelyzer/internal/domain"
)

var (
	ErrListNotFound = errors.New("favorites: list not found")
	ErrEmptyName    = errors.New("favorites: list name is empty")
)

// CustomList is a user-curated group of clubs.
type CustomList struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	ClubIDs []string `json:"clubIds"`
}

type state struct {
	Favorites []string     `json:"favorites"`
	Lists     []CustomList `json:"lists"`
}

// Store is the state container for one user's favorites.
type Store struct {
	kv     domain.Cache
	userID string

	mu sync.Mutex
	st state
}

// Manager hands out per-user stores backed by a shared KV.
type Manager struct{ kv domain.Cache }

func NewManager(kv domain.Cache) *Manager { return &Manager{kv: kv} }

// Load materializes the user's store from the KV; a missing key yields an
// empty container.
func (m *Manager) Load(ctx context.Context, userID string) (*Store, error) {
	s := &Store{kv: m.kv, userID: userID}
	if _, err := m.kv.Get(ctx, s.key(), &s.st); err != nil {
		return nil, fmt.Errorf("load favorites for %s: %w", userID, err)
	}
	return s, nil
}

func (s *Store) key() string { return "favorites:" + s.userID }

// persist serializes the whole container; called under s.mu on every change.
func (s *Store) persist(ctx context.Context) error {
	return s.kv.Set(ctx, s.key(), s.st, 0)
}

/********** favorites actions **********/

func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.st.Favorites))
	copy(out, s.st.Favorites)
	return out
}

func (s *Store) IsFavorite(clubID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.st.Favorites, clubID) >= 0
}

// AddFavorite is idempotent; re-adding keeps the original position.
func (s *Store) AddFavorite(ctx context.Context, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.st.Favorites, clubID) >= 0 {
		return nil
	}
	s.st.Favorites = append(s.st.Favorites, clubID)
	return s.persist(ctx)
}

func (s *Store) RemoveFavorite(ctx context.Context, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.st.Favorites, clubID)
	if i < 0 {
		return nil
	}
	s.st.Favorites = append(s.st.Favorites[:i], s.st.Favorites[i+1:]...)
	return s.persist(ctx)
}

/********** custom list actions **********/

func (s *Store) Lists() []CustomList {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CustomList, len(s.st.Lists))
	for i, l := range s.st.Lists {
		ids := make([]string, len(l.ClubIDs))
		copy(ids, l.ClubIDs)
		out[i] = CustomList{ID: l.ID, Name: l.Name, ClubIDs: ids}
	}
	return out
}

func (s *Store) CreateList(ctx context.Context, name string) (CustomList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CustomList{}, ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l := CustomList{ID: uuid.NewString(), Name: name}
	s.st.Lists = append(s.st.Lists, l)
	return l, s.persist(ctx)
}

func (s *Store) RenameList(ctx context.Context, listID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.find(listID)
	if l == nil {
		return ErrListNotFound
	}
	l.Name = name
	return s.persist(ctx)
}

func (s *Store) DeleteList(ctx context.Context, listID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.st.Lists {
		if l.ID == listID {
			s.st.Lists = append(s.st.Lists[:i], s.st.Lists[i+1:]...)
			return s.persist(ctx)
		}
	}
	return ErrListNotFound
}

func (s *Store) AddToList(ctx context.Context, listID, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.find(listID)
	if l == nil {
		return ErrListNotFound
	}
	if indexOf(l.ClubIDs, clubID) >= 0 {
		return nil
	}
	l.ClubIDs = append(l.ClubIDs, clubID)
	return s.persist(ctx)
}

func (s *Store) RemoveFromList(ctx context.Context, listID, clubID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.find(listID)
	if l == nil {
		return ErrListNotFound
	}
	i := indexOf(l.ClubIDs, clubID)
	if i < 0 {
		return nil
	}
	l.ClubIDs = append(l.ClubIDs[:i], l.ClubIDs[i+1:]...)
	return s.persist(ctx)
}

func (s *Store) find(listID string) *CustomList {
	for i := range s.st.Lists {
		if s.st.Lists[i].ID == listID {
			return &s.st.Lists[i]
		}
	}
	return nil
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
