// Package middleware is the chi and go-chi/cors glue every server mounts, kept free of chi types
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	"knownkey/internal/platform/logger"
	pstrings "knownkey/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// lookupHeaders are what a browser caller needs to send a translation request
var lookupHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Hash-Value", "X-Request-ID"}

// RequestID reuses an inbound X-Request-ID or mints one
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// AllowContentType rejects bodies of any other type with 415
func AllowContentType(ct ...string) func(http.Handler) http.Handler {
	return chimw.AllowContentType(ct...)
}

// CORSOptions is the part of go-chi/cors the api configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int

	// OptionsPassthrough lets preflights continue to the routes once headers are set
	OptionsPassthrough bool
}

// CORS answers cross origin checks; empty lists fall back to the lookup headers and every method
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:     o.AllowedOrigins,
		AllowedMethods:     pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders:     pstrings.IfEmpty(o.AllowedHeaders, lookupHeaders),
		ExposedHeaders:     pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials:   o.AllowCredentials,
		MaxAge:             o.MaxAge,
		OptionsPassthrough: o.OptionsPassthrough,
	})
}

// Defaults runs ahead of every route, outermost first
// RecoverJSON sits inside LogContext so a panic is logged with its request id;
// log, when set, replaces the root logger for everything logger.C serves downstream
func Defaults(timeout time.Duration, log *logger.Logger) []func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	gz := chimw.NewCompressor(flate.DefaultCompression)
	return []func(http.Handler) http.Handler{
		chimw.RealIP,
		chimw.RequestID,
		LogContext(log),
		RecoverJSON,
		chimw.Timeout(timeout),
		gz.Handler,
		chimw.NoCache,
	}
}

// LogContext hands the chi request id, and log when non nil, to logger.C; mount after RequestID
func LogContext(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if log != nil {
				ctx = log.WithContext(ctx)
			}
			ctx = logger.WithRequest(ctx, chimw.GetReqID(ctx))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
