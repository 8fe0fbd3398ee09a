// Package module wires the keystore into HTTP via modkit
package module

import (
	"context"
	"time"

	"knownkey/internal/modkit"
	"knownkey/internal/modkit/httpkit"
	"knownkey/internal/modkit/repokit"
	"knownkey/internal/platform/net/middleware"
	"knownkey/internal/services/api/keystore/domain"

	keystorehttp "knownkey/internal/services/api/keystore/http"
	"knownkey/internal/services/api/keystore/repo"
	"knownkey/internal/services/api/keystore/service"
)

// Ports exposes the keystore for cross-module lookups
type Ports struct {
	Service domain.ServicePort
	Schema  domain.Schema
}

// Module implements the keystore module
type Module struct {
	deps  modkit.Deps
	build modkit.Built
	ports Ports
	auth  *httpkit.KeyPort

	svc *service.Service
}

// Options are the keystore settings read from KEYSTORE_*
type Options struct {
	Enabled          bool
	Auth             string
	StatementTimeout time.Duration
}

// FromConfig reads KEYSTORE_ENABLED, KEYSTORE_AUTH and KEYSTORE_STATEMENT_TIMEOUT
func FromConfig(deps modkit.Deps) Options {
	cfg := deps.Cfg.Prefix("KEYSTORE_")
	return Options{
		Enabled:          cfg.MayBool("ENABLED", false),
		Auth:             cfg.MayString("AUTH", ""),
		StatementTimeout: cfg.MayDuration("STATEMENT_TIMEOUT", 2*time.Second),
	}
}

// New constructs the keystore module; deps.PG must be set
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("keystore"),
		modkit.WithPrefix("/knownKey"),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)

	db := repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(o.StatementTimeout))
	svc := service.New(db, repo.PG())

	m := &Module{
		deps:  deps,
		build: b,
		auth:  httpkit.NewKeyPort("keystore", o.Auth),
		svc:   svc,
	}
	m.ports = Ports{Service: svc, Schema: svc}
	registerDocs(b.Prefix)
	return m
}

// EnsureSchema creates the backing table
func (m *Module) EnsureSchema(ctx context.Context) error { return m.svc.EnsureSchema(ctx) }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) {
		httpkit.Protected(rr, m.auth, func(pr httpkit.Router) {
			keystorehttp.Register(pr, m.svc)
		})
	})
}

// Name is the module name
func (m *Module) Name() string { return m.build.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
