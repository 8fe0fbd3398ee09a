// Package module wires the request translator into HTTP via modkit
package module

import (
	"knownkey/internal/adapters/lookup"
	"knownkey/internal/modkit"
	"knownkey/internal/modkit/httpkit"
	"knownkey/internal/modkit/swaggerkit"
	str "knownkey/internal/platform/strings"
	"knownkey/internal/services/api/translator/domain"

	translatorhttp "knownkey/internal/services/api/translator/http"
	"knownkey/internal/services/api/translator/service"
)

// Ports exposes the translator for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Module implements the translator module
type Module struct {
	deps  modkit.Deps
	build modkit.Built
	ports Ports

	svc *service.Service
}

// New constructs the translator module
// TRANSLATOR_PREFIX sets the mount path and TRANSLATOR_MAX_BODY caps lookup replies
// TRANSLATOR_SELF_URL is the base for relative lookup urls, defaulting to CORE_API_PORT on loopback
// WithPorts(domain.LookupPort) replaces the outbound client
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := deps.Cfg.Prefix("TRANSLATOR_")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("translator"),
		modkit.WithPrefix(str.NormPrefix(cfg.MayString("PREFIX", "/"))),
	}, opts...)...)

	log := deps.Log.With().Str("component", "translator").Logger()

	client, ok := b.Ports.(domain.LookupPort)
	if !ok {
		client = lookup.NewClient(nil, lookup.Options{
			MaxBody: cfg.MayInt64("MAX_BODY", 1<<20),
			Log:     &log,
		})
	}

	raw := cfg.MayString("SELF_URL", deps.Cfg.MayString("CORE_API_PORT", ":4000"))
	self, err := lookup.SelfURL(raw)
	if err != nil {
		// relative lookup urls will fail closed
		log.Error().Err(err).Str("self_url", raw).Msg("no usable self url")
	}
	svc := service.New(deps.Cfg, client, self, log)

	swaggerkit.Register("translator", describe(b.Prefix))

	return &Module{
		deps:  deps,
		build: b,
		ports: Ports{Service: svc},
		svc:   svc,
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.build.Mount(r, func(rr httpkit.Router) {
		translatorhttp.Register(rr, m.svc)
	})
}

// Name is the module name
func (m *Module) Name() string { return m.build.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
