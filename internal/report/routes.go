package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ykhadiri/alkimiya/internal/explorer"
)

// RegisterRoutes mounts the report endpoints.
func RegisterRoutes(r chi.Router, session *explorer.Session, mixer *explorer.Mixer) {
	r.Get("/api/report", handleReport(session, mixer))
	r.Get("/api/report.md", handleReportMarkdown(session, mixer))
}

func collect(session *explorer.Session, mixer *explorer.Mixer) Data {
	snap := session.Snapshot()
	d := Data{
		Element:     snap.Viewing,
		Lab:         snap.Lab,
		GeneratedAt: time.Now(),
	}
	// Only cached content goes into a report; rendering never triggers
	// generation.
	if details, ok := session.CachedDetails(); ok {
		d.Details = details
	}
	if mix, ok := mixer.Result(); ok {
		d.Mix = mix
	}
	return d
}

func handleReport(session *explorer.Session, mixer *explorer.Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := Render(collect(session, mixer))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func handleReportMarkdown(session *explorer.Session, mixer *explorer.Mixer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(Markdown(collect(session, mixer))))
	}
}
