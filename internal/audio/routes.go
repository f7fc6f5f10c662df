package audio

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the playback control API.
func RegisterRoutes(r chi.Router, c *Controller) {
	r.Route("/api/playback", func(r chi.Router) {
		r.Get("/", handleStates(c))
		r.Post("/{category}/pause", handlePause(c))
		r.Post("/{category}/stop", handleStop(c))
	})
	r.Get("/ws/playback", handleEvents(c))
}

func handleStates(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states := map[Category]State{
			CategoryName:   c.State(CategoryName),
			CategoryReader: c.State(CategoryReader),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(states)
	}
}

func categoryParam(r *http.Request) (Category, bool) {
	cat := Category(chi.URLParam(r, "category"))
	return cat, cat.Valid()
}

func handlePause(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := categoryParam(r)
		if !ok {
			http.Error(w, `{"error":"unknown playback category"}`, http.StatusNotFound)
			return
		}
		c.TogglePause(cat)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]State{"state": c.State(cat)})
	}
}

func handleStop(c *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := categoryParam(r)
		if !ok {
			http.Error(w, `{"error":"unknown playback category"}`, http.StatusNotFound)
			return
		}
		c.Stop(cat)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]State{"state": StateIdle})
	}
}
