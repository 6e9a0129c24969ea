package middleware

import (
	"net/http"
	"time"
)

// RequestLogger is the logging interface of the request log middleware.
type RequestLogger interface {
	Info(format string, v ...interface{})
}

// Logging writes one line per request with method, path, status, and latency.
func Logging(log RequestLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			log.Info("%s %s - %d (%s)", r.Method, r.URL.Path, recorder.status, time.Since(start))
		})
	}
}
