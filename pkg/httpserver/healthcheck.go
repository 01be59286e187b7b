package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"taskboard/pkg/logger"
)

// HealthCheckHandler returns an HTTP handler usable for liveness and
// readiness probes.
//
// With no dependency checks supplied the handler answers 200 "ALIVE".
// With checks supplied, each is executed per request; all passing yields
// 200 "READY", any failure yields 503 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
