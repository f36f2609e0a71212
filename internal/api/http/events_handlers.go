package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/learnflow/learnflow/internal/eventlog"
)

func RecentEventsHandler(events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		evs, err := events.Recent(r.Context(), n)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(evs)
	}
}
