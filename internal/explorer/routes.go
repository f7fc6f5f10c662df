package explorer

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// RegisterRoutes mounts the element catalog, session and mixing endpoints.
func RegisterRoutes(r chi.Router, session *Session, mixer *Mixer, catalog *elements.Catalog) {
	r.Get("/api/elements", handleListElements(catalog))
	r.Get("/api/elements/{number}", handleGetElement(catalog))

	r.Get("/api/session", handleSessionState(session, mixer))
	r.Put("/api/session/view/{number}", handleOpenElement(session))
	r.Delete("/api/session/view", handleCloseElement(session))
	r.Put("/api/session/lab/{number}", handleToggleLab(session))
	r.Delete("/api/session/lab", handleClearLab(mixer))
	r.Post("/api/session/details", handleGenerateDetails(session))
	r.Post("/api/session/name/{lang}/play", handlePlayName(session))
	r.Get("/api/session/audio/{section}/{lang}", handleSectionAudio(session))
	r.Post("/api/session/audio/{section}/{lang}", handleNarrate(session))

	r.Post("/api/mix", handleMix(mixer))
	r.Get("/api/mix", handleMixResult(mixer))
	r.Post("/api/mix/reset", handleMixReset(mixer))
}

// sessionState is the combined view returned by GET /api/session.
type sessionState struct {
	Snapshot
	MixInFlight bool            `json:"mixInFlight"`
	MixResult   *genai.Compound `json:"mixResult,omitempty"`
}

func handleListElements(catalog *elements.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := elements.Filter{
			Query:    r.URL.Query().Get("q"),
			Category: elements.Category(r.URL.Query().Get("category")),
		}
		writeJSON(w, http.StatusOK, catalog.Search(filter))
	}
}

func handleGetElement(catalog *elements.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid atomic number")
			return
		}
		el, ok := catalog.ByNumber(number)
		if !ok {
			httpError(w, http.StatusNotFound, "unknown element")
			return
		}
		writeJSON(w, http.StatusOK, el)
	}
}

func handleSessionState(session *Session, mixer *Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := sessionState{
			Snapshot:    session.Snapshot(),
			MixInFlight: mixer.InFlight(),
		}
		if result, ok := mixer.Result(); ok {
			state.MixResult = result
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func handleOpenElement(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid atomic number")
			return
		}
		el, err := session.Open(number)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, el)
	}
}

func handleCloseElement(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.Close()
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleToggleLab(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.Atoi(chi.URLParam(r, "number"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid atomic number")
			return
		}
		if err := session.ToggleLab(number); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"lab": session.Selection().Lab()})
	}
}

func handleClearLab(mixer *Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mixer.Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGenerateDetails(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := session.GenerateDetails(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, details)
	}
}

func handlePlayName(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := elements.Lang(chi.URLParam(r, "lang"))
		if !lang.Valid() {
			httpError(w, http.StatusBadRequest, "unknown language")
			return
		}
		if err := session.PlayName(lang); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSectionAudio(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, lang, ok := audioParams(w, r)
		if !ok {
			return
		}
		pcm, err := session.SectionAudio(r.Context(), section, lang)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "audio/wav")
		if err := audio.WriteWAV(w, pcm); err != nil {
			log.Printf("explorer: writing wav response: %v", err)
		}
	}
}

func handleNarrate(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, lang, ok := audioParams(w, r)
		if !ok {
			return
		}
		if err := session.Narrate(r.Context(), section, lang); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMix(mixer *Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		compound, err := mixer.Mix(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, compound)
	}
}

func handleMixResult(mixer *Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, ok := mixer.Result()
		if !ok {
			httpError(w, http.StatusNotFound, "no mix result")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleMixReset(mixer *Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mixer.Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}

func audioParams(w http.ResponseWriter, r *http.Request) (Section, elements.Lang, bool) {
	section := Section(chi.URLParam(r, "section"))
	if !section.Valid() {
		httpError(w, http.StatusBadRequest, "unknown section")
		return "", "", false
	}
	lang := elements.Lang(chi.URLParam(r, "lang"))
	if !lang.Valid() {
		httpError(w, http.StatusBadRequest, "unknown language")
		return "", "", false
	}
	return section, lang, true
}

// writeError maps domain errors onto HTTP status codes: missing
// credentials are 503, upstream model failures 502, selection and state
// conflicts 409, unknown resources 404 and playback failures 500.
func writeError(w http.ResponseWriter, err error) {
	var playErr *audio.PlaybackError
	switch {
	case errors.Is(err, genai.ErrMissingAPIKey):
		httpError(w, http.StatusServiceUnavailable, err.Error())
	case genai.IsUpstream(err):
		httpError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrInvalidSelection),
		errors.Is(err, ErrMixInFlight),
		errors.Is(err, ErrNoElementOpen),
		errors.Is(err, ErrStaleElement),
		errors.Is(err, ErrNoDetails):
		httpError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnknownElement), errors.Is(err, ErrAudioUnavailable):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &playErr):
		httpError(w, http.StatusInternalServerError, err.Error())
	default:
		httpError(w, http.StatusInternalServerError, err.Error())
	}
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("explorer: encoding response: %v", err)
	}
}
