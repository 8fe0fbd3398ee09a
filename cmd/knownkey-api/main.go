// Command knownkey-api serves the request translator, the meta endpoints and,
// when postgres is configured, the /knownKey keystore
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"knownkey/internal/core/version"
	"knownkey/internal/platform/config"
	"knownkey/internal/platform/logger"
	phttp "knownkey/internal/platform/net/http"
	"knownkey/internal/platform/store"

	"knownkey/internal/services/api"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	// CORE_API_* carries the http knobs
	core := root.Prefix("CORE_")
	apiCfg := core.Prefix("API_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	// postgres is optional, it only backs the keystore and /meta/ready
	st, err := store.Open(ctx,
		store.FromConf(version.Service, root.Prefix("SERVICE_")),
		store.WithLogger(*logger.Named("store")),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// reads CORE_API_PORT and the server timeouts
	srv := phttp.NewServer(core)

	err = api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Timeout:        apiCfg.MayDuration("TIMEOUT", 30*time.Second),
		Origins:        apiCfg.MayCSV("CORS_ORIGINS", nil),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("api.Mount failed")
	}

	l.Info().Str("addr", srv.Addr()).Str("version", version.Info().Version).Msg("knownkey api listening")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
