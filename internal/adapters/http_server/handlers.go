package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"padelyzer/internal/adapters/observability"
	"padelyzer/internal/app"
	"padelyzer/internal/favorites"
)

type Handlers struct {
	Q   *app.QueryService
	Fav *favorites.Manager
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/clubs/search", h.searchClubs)
	s.mux.Get("/v1/clubs/{id}", h.getClub)

	s.mux.Route("/v1/users/{userID}/favorites", func(r chi.Router) {
		r.Get("/", h.getFavorites)
		r.Put("/{clubID}", h.addFavorite)
		r.Delete("/{clubID}", h.removeFavorite)
	})
	s.mux.Route("/v1/users/{userID}/lists", func(r chi.Router) {
		r.Get("/", h.getLists)
		r.Post("/", h.createList)
		r.Delete("/{listID}", h.deleteList)
		r.Put("/{listID}/clubs/{clubID}", h.addToList)
		r.Delete("/{listID}/clubs/{clubID}", h.removeFromList)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON body failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

/********** clubs **********/

func (h *Handlers) getClub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, err := h.Q.GetClub(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "club not found")
		return
	}
	writeCached(w, r, resp)
}

func (h *Handlers) searchClubs(w http.ResponseWriter, r *http.Request) {
	p, err := parseSearchParams(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid search parameters", err.Error())
		return
	}

	start := time.Now()
	out, err := h.Q.Search(r.Context(), p)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Search failed", "could not run club search")
		return
	}
	observability.ObserveSearch(string(out.Sort), out.Total, time.Since(start))

	writeCached(w, r, out)
}

/********** favorites **********/

func (h *Handlers) store(w http.ResponseWriter, r *http.Request) *favorites.Store {
	userID := chi.URLParam(r, "userID")
	st, err := h.Fav.Load(r.Context(), userID)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not load favorites")
		return nil
	}
	return st
}

func (h *Handlers) getFavorites(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": st.Favorites()})
}

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	if err := st.AddFavorite(r.Context(), chi.URLParam(r, "clubID")); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not save favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) removeFavorite(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	if err := st.RemoveFavorite(r.Context(), chi.URLParam(r, "clubID")); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) getLists(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": st.Lists()})
}

func (h *Handlers) createList(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected {\"name\": ...}")
		return
	}
	l, err := st.CreateList(r.Context(), in.Name)
	if err != nil {
		if errors.Is(err, favorites.ErrEmptyName) {
			writeProblem(w, http.StatusBadRequest, "Invalid list name", "list name must not be empty")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not create list")
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handlers) deleteList(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	if err := st.DeleteList(r.Context(), chi.URLParam(r, "listID")); err != nil {
		if errors.Is(err, favorites.ErrListNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "list not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not delete list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) addToList(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	err := st.AddToList(r.Context(), chi.URLParam(r, "listID"), chi.URLParam(r, "clubID"))
	if err != nil {
		if errors.Is(err, favorites.ErrListNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "list not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not update list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) removeFromList(w http.ResponseWriter, r *http.Request) {
	st := h.store(w, r)
	if st == nil {
		return
	}
	err := st.RemoveFromList(r.Context(), chi.URLParam(r, "listID"), chi.URLParam(r, "clubID"))
	if err != nil {
		if errors.Is(err, favorites.ErrListNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "list not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Favorites unavailable", "could not update list")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
