// Package version reports what build is running, for /meta/version and the docs
package version

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Service is the name reported by meta endpoints and the docs
const Service = "knownkey-api"

// set with -ldflags "-X knownkey/internal/core/version.version=v0.1.0 -X ...commit=... -X ...date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the /meta/version payload
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
}

// Info prefers ldflags values and falls back to the vcs stamp go build embeds
var Info = sync.OnceValue(func() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date, GoVersion: runtime.Version()}
	stamp, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if bi.Version == "dev" && stamp.Main.Version != "" && stamp.Main.Version != "(devel)" {
		bi.Version = stamp.Main.Version
	}
	for _, s := range stamp.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
})
