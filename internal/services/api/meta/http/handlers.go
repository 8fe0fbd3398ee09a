// Package http serves /meta: liveness, keystore readiness, build and service info
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"knownkey/internal/core/version"
	"knownkey/internal/modkit/httpkit"
)

// readyTimeout bounds the keystore ping behind /ready
const readyTimeout = 2 * time.Second

// Pinger is the readiness hook a backend may expose
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// PG backs the keystore; nil means no keystore is mounted
	PG any
	// Now defaults to time.Now
	Now func() time.Time
	// Modules lists what is mounted, read per request since meta mounts first
	Modules func() []string
}

type (
	// HealthResponse is the /health payload
	HealthResponse struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
		Started string `json:"started"`
		Now     string `json:"now"`
	}

	// ReadyCheck is one dependency's state: ok, fail, skipped or unknown
	ReadyCheck struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	// ReadyResponse is the /ready payload; Status is fail when any check failed
	ReadyResponse struct {
		Status string       `json:"status"`
		Checks []ReadyCheck `json:"checks"`
		Now    string       `json:"now"`
	}

	// ServiceResponse is the /service payload; Uptime is in seconds
	ServiceResponse struct {
		Name    string   `json:"name"`
		Started string   `json:"started"`
		Uptime  int64    `json:"uptime"`
		Modules []string `json:"modules"`
	}
)

type handlers struct{ Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", h.service)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (h handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.Now())}, nil
}

// ready only has the keystore to check; the translator needs nothing to be up
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	out := ReadyResponse{Status: "ok", Now: stamp(h.Now())}
	for _, c := range []ReadyCheck{pingBackend(ctx, "pg", h.PG)} {
		if c.Status == "fail" {
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, c)
	}
	return out, nil
}

func pingBackend(ctx stdctx.Context, name string, b any) ReadyCheck {
	c := ReadyCheck{Name: name, Status: "unknown"}
	switch p := b.(type) {
	case nil:
		c.Status = "skipped"
	case Pinger:
		c.Status = "ok"
		if err := p.Ping(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
		}
	}
	return c
}

func (h handlers) service(*http.Request) (any, error) {
	mods := []string{}
	if h.Modules != nil {
		mods = h.Modules()
	}
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(h.Now().Sub(h.StartedAt) / time.Second),
		Modules: mods,
	}, nil
}
