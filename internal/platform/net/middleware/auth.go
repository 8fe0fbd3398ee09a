package middleware

import (
	"net/http"

	pnet "knownkey/internal/platform/net"
)

// AuthPort checks request credentials
type AuthPort interface {
	// Parse returns the caller name for the request or an error
	Parse(r *http.Request) (principal string, err error)
}

// Auth rejects requests the port refuses and stores the principal on context
// A nil port lets everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			who, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithPrincipal(r.Context(), who)))
		})
	}
}
