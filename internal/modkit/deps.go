package modkit

import (
	"knownkey/internal/modkit/repokit"
	"knownkey/internal/platform/config"
	"knownkey/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	// PG is nil when postgres is not configured
	PG repokit.TxRunner
}

// HasPG reports whether a postgres seam was wired
func (d Deps) HasPG() bool { return d.PG != nil }
