package testkit

import (
	"sync"
	"testing"
)

// seams serializes tests that replace package level variables such as
// the store's sleep or the pg pool constructor
var seams sync.Mutex

// Serial holds the seam lock until t and its subtests finish
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// Swap points *target at v until t finishes
// call Serial first when other tests read the same variable
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	prev := *target
	t.Cleanup(func() { *target = prev })
	*target = v
}
