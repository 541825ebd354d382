package delivery

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"food-delivery/internal/common/httpx"
)

const serviceName = "delivery-service"

// Router exposes the read-only query surface over the assignment store.
func Router(store *Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "service": serviceName})
	})

	mux.HandleFunc("GET /assignments", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, store.List())
	})

	mux.HandleFunc("GET /assignments/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		a, ok := store.Get(r.PathValue("order_id"))
		if !ok {
			httpx.WriteProblem(w, http.StatusNotFound, "assignment_not_found", "no assignment for this order")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
