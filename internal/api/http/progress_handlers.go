package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnflow/learnflow/internal/eventlog"
	"github.com/learnflow/learnflow/internal/progress"
)

type progressView struct {
	progress.Record
	Percentage float64 `json:"percentage"`
	// IsCompleted is the derived answer (explicit flag OR >=90% watched),
	// distinct from the raw Record.Completed flag.
	IsCompleted bool   `json:"is_completed"`
	Display     string `json:"display"` // "M:SS / M:SS"
}

func viewOf(store *progress.Store, r progress.Record) progressView {
	return progressView{
		Record:      r,
		Percentage:  store.GetCompletionPercentage(r.VideoID),
		IsCompleted: store.IsCompleted(r.VideoID),
		Display:     progress.FormatTime(r.CurrentTime) + " / " + progress.FormatTime(r.Duration),
	}
}

func GetProgressHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "videoID")
		rec, ok := store.GetProgress(id)
		if !ok {
			http.Error(w, "no progress", 404)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(store, rec))
	}
}

func ListProgressHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(store.GetAllProgress())
	}
}

// SaveProgressHandler records a player-reported position. The player calls
// this on its own progress ticks and seeks.
func SaveProgressHandler(store *progress.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "videoID")
		var req struct {
			CurrentTime float64 `json:"current_time"`
			Duration    float64 `json:"duration"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.CurrentTime < 0 || req.Duration < 0 {
			http.Error(w, "negative time", 400)
			return
		}
		store.SaveProgress(id, req.CurrentTime, req.Duration, false)
		appendEvent(r.Context(), events, eventlog.TypeProgressSaved, id, req)
		rec, _ := store.GetProgress(id)
		_ = json.NewEncoder(w).Encode(viewOf(store, rec))
	}
}

func MarkCompletedHandler(store *progress.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "videoID")
		var req struct {
			Duration float64 `json:"duration"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		store.MarkCompleted(id, req.Duration)
		appendEvent(r.Context(), events, eventlog.TypeVideoCompleted, id, req)
		rec, _ := store.GetProgress(id)
		_ = json.NewEncoder(w).Encode(viewOf(store, rec))
	}
}

func RemoveProgressHandler(store *progress.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "videoID")
		store.RemoveProgress(id)
		appendEvent(r.Context(), events, eventlog.TypeProgressRemoved, id, nil)
		w.WriteHeader(http.StatusNoContent)
	}
}

func CleanupProgressHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed := store.CleanupOldProgress()
		_ = json.NewEncoder(w).Encode(map[string]int{"removed": removed})
	}
}

func appendEvent(ctx context.Context, events *eventlog.Repo, typ, key string, data interface{}) {
	if events == nil {
		return
	}
	if err := events.Append(ctx, typ, key, data); err != nil {
		log.Printf("eventlog: append %s failed: %v", typ, err)
	}
}
