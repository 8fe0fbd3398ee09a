// Package modkit builds API modules from shared deps and options
package modkit

import "knownkey/internal/modkit/module"

// Module is the surface api.Mount needs from each module
type Module = module.Module
