package httpkit

import (
	"net/http"

	perr "knownkey/internal/platform/errors"
	pnet "knownkey/internal/platform/net"
)

// Principal returns the caller stored by the auth middleware
func Principal(r *http.Request) (string, error) {
	who := pnet.Principal(r.Context())
	if who == "" {
		return "", perr.Unauthorizedf("unauthenticated")
	}
	return who, nil
}
