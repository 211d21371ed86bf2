package favorites_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "padelyzer/internal/adapters/redis"
	"padelyzer/internal/favorites"
)

func newManager(t *testing.T) *favorites.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	return favorites.NewManager(redisad.New(mr.Addr(), "", 0))
}

func TestFavoritesPersistAcrossLoads(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	st, err := m.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := st.AddFavorite(ctx, "club-1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := st.AddFavorite(ctx, "club-2"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// a fresh load sees the serialized state
	st2, err := m.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	favs := st2.Favorites()
	if len(favs) != 2 || favs[0] != "club-1" || favs[1] != "club-2" {
		t.Fatalf("unexpected favorites: %v", favs)
	}
	if !st2.IsFavorite("club-1") {
		t.Fatal("club-1 should be favorite")
	}
}

func TestAddFavoriteIdempotent(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	st, _ := m.Load(ctx, "user-1")
	_ = st.AddFavorite(ctx, "club-1")
	_ = st.AddFavorite(ctx, "club-1")
	if n := len(st.Favorites()); n != 1 {
		t.Fatalf("expected 1 favorite, got %d", n)
	}
}

func TestRemoveFavorite(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	st, _ := m.Load(ctx, "user-1")
	_ = st.AddFavorite(ctx, "club-1")
	if err := st.RemoveFavorite(ctx, "club-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if st.IsFavorite("club-1") {
		t.Fatal("club-1 should be gone")
	}
	// removing again is a no-op
	if err := st.RemoveFavorite(ctx, "club-1"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	a, _ := m.Load(ctx, "user-a")
	_ = a.AddFavorite(ctx, "club-1")

	b, _ := m.Load(ctx, "user-b")
	if b.IsFavorite("club-1") {
		t.Fatal("user-b must not see user-a favorites")
	}
}

func TestCustomListLifecycle(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	st, _ := m.Load(ctx, "user-1")
	l, err := st.CreateList(ctx, "Weekend clubs")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID == "" {
		t.Fatal("list must get an id")
	}

	if err := st.AddToList(ctx, l.ID, "club-1"); err != nil {
		t.Fatalf("add to list: %v", err)
	}
	if err := st.AddToList(ctx, l.ID, "club-1"); err != nil {
		t.Fatalf("duplicate add should be a no-op: %v", err)
	}
	if err := st.RenameList(ctx, l.ID, "Sunday clubs"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	st2, _ := m.Load(ctx, "user-1")
	lists := st2.Lists()
	if len(lists) != 1 || lists[0].Name != "Sunday clubs" {
		t.Fatalf("unexpected lists: %+v", lists)
	}
	if len(lists[0].ClubIDs) != 1 || lists[0].ClubIDs[0] != "club-1" {
		t.Fatalf("unexpected list members: %v", lists[0].ClubIDs)
	}

	if err := st2.RemoveFromList(ctx, lists[0].ID, "club-1"); err != nil {
		t.Fatalf("remove from list: %v", err)
	}
	if err := st2.DeleteList(ctx, lists[0].ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if n := len(st2.Lists()); n != 0 {
		t.Fatalf("expected no lists, got %d", n)
	}
}

func TestCreateListValidation(t *testing.T) {
	m := newManager(t)
	st, _ := m.Load(context.Background(), "user-1")
	if _, err := st.CreateList(context.Background(), "   "); err != favorites.ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestListNotFound(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	st, _ := m.Load(ctx, "user-1")
	if err := st.AddToList(ctx, "nope", "club-1"); err != favorites.ErrListNotFound {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
	if err := st.DeleteList(ctx, "nope"); err != favorites.ErrListNotFound {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}
