package middleware

import (
	"net/http"
	"slices"
	"time"

	"knownkey/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests at warn once they take this long; 0 never does
	Slow time.Duration
	// Skip lists exact paths that are served but not logged
	Skip []string
}

// AccessLogZerolog writes one line per request through logger.C
// credentials are never logged; has_hash only records whether X-Hash-Value arrived
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	skip := slices.Clone(opt.Skip)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skip, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			ev := log.Info()
			if opt.Slow > 0 && took >= opt.Slow {
				ev = log.Warn()
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Bool("has_hash", r.Header.Get("X-Hash-Value") != "").
				Str("remote", r.RemoteAddr).
				Msg("request done")
		})
	}
}
