// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "knownkey/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// MountAll mounts every non-nil module in order on r and records its name
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		if m == nil {
			continue
		}
		m.MountRoutes(r)
		Register(m.Name())
	}
}
