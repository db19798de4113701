// Package leaktest checks that background workers give their goroutines back.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Check waits for goroutines to exit.
const DefaultSettleTimeout = time.Second

// GoroutineChecker records the goroutine count at construction.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines from earlier tests finish exiting
	settle(0, 20*time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count is back within tolerance of the
// baseline, failing the test after DefaultSettleTimeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, DefaultSettleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// Run checks that start followed by stop leaves no goroutines behind.
func Run(t *testing.T, tolerance int, start, stop func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	start()
	stop()
	checker.Check(tolerance)
}

// settle waits until at most target goroutines remain or timeout passes and
// returns the last count. A target of 0 just waits out the timeout.
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if (target > 0 && n <= target) || !time.Now().Before(deadline) {
			return n
		}
		time.Sleep(5 * time.Millisecond)
	}
}
