// Package http provides the HTTP transport for the keystore
package http

import (
	stdhttp "net/http"

	"knownkey/internal/modkit/httpkit"
	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
	"knownkey/internal/services/api/keystore/domain"
)

// Register mounts the keystore endpoints; the router is expected to be auth protected
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.get)
	httpkit.PutJSON(r, "/", h.put)
	httpkit.Delete(r, "/", h.delete)
}

type handlers struct{ svc domain.ServicePort }

func hashFrom(r *stdhttp.Request) (string, error) {
	vv := r.Header.Values(domain.HashHeader)
	if len(vv) == 0 {
		return "", perr.WithField(perr.InvalidArgf("missing %s header", domain.HashHeader), "hash")
	}
	return vv[0], nil
}

// get answers {"id":"<uuid>"} for a known hash and 404 otherwise
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	hash, err := hashFrom(r)
	if err != nil {
		return nil, err
	}
	k, err := h.svc.Get(r.Context(), hash)
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(domain.IDResponse{ID: k.ID.String()}), nil
}

func (h *handlers) put(r *stdhttp.Request, in domain.PutInput) (any, error) {
	k, err := h.svc.Put(r.Context(), in)
	if err != nil {
		return nil, err
	}
	who, _ := httpkit.Principal(r)
	logger.C(r.Context()).Info().Str("by", who).Str("id", k.ID.String()).Msg("known key stored")
	return httpkit.Bare(domain.IDResponse{ID: k.ID.String()}), nil
}

func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	hash, err := hashFrom(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), hash); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
