// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"
	"time"

	"knownkey/internal/platform/config"
	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/platform/store"

	"knownkey/internal/modkit"
	"knownkey/internal/modkit/httpkit"
	"knownkey/internal/modkit/module"
	"knownkey/internal/modkit/repokit"
	"knownkey/internal/modkit/swaggerkit"

	keystoremod "knownkey/internal/services/api/keystore/module"
	metamod "knownkey/internal/services/api/meta/module"
	translatordomain "knownkey/internal/services/api/translator/domain"
	translatormod "knownkey/internal/services/api/translator/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	Timeout        time.Duration
	Origins        []string

	// Translator options, e.g. modkit.WithPorts to swap the lookup client
	Translator []modkit.Option
}

// Mount mounts the API service onto the given router
// the keystore schema is created here, so ctx bounds startup
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}

	deps := modkit.Deps{Log: *log, Cfg: opt.Config}
	if opt.Store != nil && opt.Store.PG != nil {
		deps.PG = opt.Store.PG
	}

	// chi wants middleware before any route
	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		Timeout:    opt.Timeout,
		Origins:    opt.Origins,
		QuietPaths: []string{"/meta/health"},
		Log:        log,
	})...)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	mods := []module.Module{metamod.New(deps)}

	ko := keystoremod.FromConfig(deps)
	switch {
	case ko.Enabled && deps.HasPG():
		if err := repokit.Guard(ctx, opt.Store); err != nil {
			return err
		}
		ks := keystoremod.New(deps, ko)
		if err := module.MustPortsOf[keystoremod.Ports](ks).Schema.EnsureSchema(ctx); err != nil {
			return err
		}
		mods = append(mods, ks)
	default:
		if ko.Enabled {
			log.Warn().Msg("keystore enabled without postgres, not mounted")
		}
		// the default lookupUrl points back at this server
		// answer it directly so it never reaches the translator catch-all
		r.Any(translatordomain.DefaultLookupPath, missingKeystore)
	}

	// the translator owns every remaining path, so it goes last
	mods = append(mods, translatormod.New(deps, opt.Translator...))

	module.MountAll(r, mods...)
	return nil
}

func missingKeystore(w http.ResponseWriter, r *http.Request) {
	phttp.RespondError(w, r, perr.NotFoundf("no keystore mounted"))
}
