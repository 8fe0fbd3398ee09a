package httpkit

import (
	"crypto/subtle"
	"net/http"

	perr "knownkey/internal/platform/errors"
)

// KeyPort implements middleware.AuthPort by comparing Authorization with a shared secret
type KeyPort struct {
	name   string
	secret []byte
}

// NewKeyPort builds a KeyPort; principal is the name stored on context for accepted calls
func NewKeyPort(principal, secret string) *KeyPort {
	return &KeyPort{name: principal, secret: []byte(secret)}
}

// Parse accepts the request when Authorization equals the secret byte for byte
// an empty secret refuses everything
func (p *KeyPort) Parse(r *http.Request) (string, error) {
	got := r.Header.Get("Authorization")
	if got == "" {
		return "", perr.Unauthorizedf("missing authorization")
	}
	if len(p.secret) == 0 || subtle.ConstantTimeCompare([]byte(got), p.secret) != 1 {
		return "", perr.Unauthorizedf("invalid authorization")
	}
	return p.name, nil
}
