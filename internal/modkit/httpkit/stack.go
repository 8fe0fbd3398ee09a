package httpkit

import (
	"time"

	"knownkey/internal/platform/logger"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	Origins     []string
	QuietPaths  []string
	NoAccessLog bool

	// Log serves request logging; nil is the root logger
	Log *logger.Logger
}
