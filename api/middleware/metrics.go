package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/shopflow-backend/pkg/metrics"
)

// Metrics records one intent observation per request, labelled by the
// matched chi route pattern.
func Metrics(em *metrics.EngineMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			intent := r.Method + " " + routePattern(r)
			em.IncIntent(intent)
			em.ObserveDuration(intent, time.Since(start))
			if rec.status >= http.StatusBadRequest {
				em.IncFailure(intent)
			}
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
