// Package http provides the HTTP transport for the translator
package http

import (
	stdhttp "net/http"

	"knownkey/internal/modkit/httpkit"
	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/services/api/translator/domain"
)

// Register mounts the translator on every method of / and everything below it
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	r.Any("/", h.translate)
	r.Any("/*", h.translate)
}

type handlers struct{ svc domain.ServicePort }

// translate always answers 200 with {"id":"<x>"} or {"id":null}
func (h *handlers) translate(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.JSONRaw(w, stdhttp.StatusOK, h.svc.Handle(r).Bytes())
}
