package module

import (
	"slices"
	"sync"
)

// mounted records module names in mount order for /meta/service
var mounted struct {
	sync.RWMutex
	names []string
}

// Register records name as mounted; a name seen before keeps its first position
func Register(name string) {
	mounted.Lock()
	defer mounted.Unlock()
	if !slices.Contains(mounted.names, name) {
		mounted.names = append(mounted.names, name)
	}
}

// Names returns the mounted module names in mount order
func Names() []string {
	mounted.RLock()
	defer mounted.RUnlock()
	return slices.Clone(mounted.names)
}

// Reset forgets every mounted module, for tests that mount more than once
func Reset() {
	mounted.Lock()
	mounted.names = nil
	mounted.Unlock()
}
