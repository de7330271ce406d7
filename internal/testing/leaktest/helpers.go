// Package leaktest detects goroutines left behind by concurrent tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	checkTimeout = 2 * time.Second
)

// GoroutineChecker records the goroutine count at construction time
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines are still running
// after the grace period.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(checkTimeout)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
				g.before, g.before+leaked, leaked, tolerance)
			return
		}
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
