package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
	pnet "knownkey/internal/platform/net"
)

// RecoverJSON turns a panic into the 500 error envelope and logs the stack
// http.ErrAbortHandler still aborts the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			switch v := recover(); v {
			case nil:
				return
			case stdhttp.ErrAbortHandler:
				panic(v)
			default:
				logger.C(r.Context()).Error().Interface("panic", v).Bytes("stack", debug.Stack()).Msg("panic recovered")
				writePanic(w, pnet.RequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writePanic(w stdhttp.ResponseWriter, rid string) {
	status, body := pnet.Error(perr.PanicErrf("panic recovered"), rid)
	h := w.Header()
	if rid != "" {
		h.Set("X-Request-ID", rid)
	}
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = stdjson.NewEncoder(w).Encode(body)
}
