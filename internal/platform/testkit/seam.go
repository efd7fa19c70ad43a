package testkit

import (
	"sync"
	"testing"
)

// Seams are package-level variables a test replaces to force a path it
// cannot reach through the public API, such as the OpenAPI doc reader or
// the registered spec mutators in swaggerkit.

var (
	seamsMu sync.Mutex
	seams   = map[string]*sync.Mutex{}
)

// Swap sets *target to v until the test ends and returns the value it replaced
func Swap[T any](t testing.TB, target *T, v T) T {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
	return prev
}

// Serial holds the shared seam lock until the test ends
func Serial(t testing.TB) { SerialOn(t, "") }

// SerialOn holds the lock for one named seam until the test ends, so tests
// touching different seams still run in parallel
func SerialOn(t testing.TB, seam string) {
	t.Helper()
	seamsMu.Lock()
	mu, ok := seams[seam]
	if !ok {
		mu = &sync.Mutex{}
		seams[seam] = mu
	}
	seamsMu.Unlock()

	mu.Lock()
	t.Cleanup(mu.Unlock)
}
