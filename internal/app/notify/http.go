package notify

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"food-delivery/internal/common/httpx"
)

const serviceName = "notification-service"

// Router exposes the read-only query surface over the notification store.
func Router(store *Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "service": serviceName})
	})

	mux.HandleFunc("GET /notifications", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, store.ListAll())
	})

	mux.HandleFunc("GET /notifications/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		seq, ok := store.ListFor(r.PathValue("user_id"))
		if !ok {
			httpx.WriteProblem(w, http.StatusNotFound, "no_notifications", "user has no notifications")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, seq)
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
