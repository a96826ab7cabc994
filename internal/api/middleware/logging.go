package middleware

import (
	"fmt"
	"net/http"
	"time"
	"todo_api/internal/platform/logging"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request after the handler returns.
func RequestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info(r.Context(),
				fmt.Sprintf("%s %s completed in %.4fs", r.Method, r.URL.Path, elapsed.Seconds()),
				"status", status,
				"duration", elapsed,
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}
