package store

import (
	"time"

	"knownkey/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs, zero means default
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// FromConf reads PGSQL_* keys under cfg (usually config.New().Prefix("SERVICE_"))
// postgres is enabled when PGSQL_DBURL is set
func FromConf(app string, cfg config.Conf) Config {
	url := cfg.MayString("PGSQL_DBURL", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(cfg.MayInt("PGSQL_MAX_CONNS", 8)),
			LogSQL:         cfg.MayBool("PGSQL_LOG_SQL", false),
			SlowQueryMs:    cfg.MayInt("PGSQL_SLOW_MS", 200),
			ConnectRetries: cfg.MayInt("PGSQL_CONNECT_RETRIES", 20),
			PingTimeout:    cfg.MayDuration("PGSQL_PING_TIMEOUT", 3*time.Second),
		},
	}
}
