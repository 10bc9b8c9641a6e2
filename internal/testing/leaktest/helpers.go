// Package leaktest asserts that code under test does not leave goroutines
// running after it returns.
package leaktest

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker snapshots the running goroutines and later reports any
// that were started since and are still alive.
type GoroutineChecker struct {
	t      testing.TB
	before map[string]bool
}

// NewGoroutineChecker takes the baseline snapshot.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: goroutineIDs()}
}

// Check fails the test if more than tolerance new goroutines outlive
// settleTimeout. The failure lists the first frame of each survivor.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	var leaked []string
	deadline := time.Now().Add(settleTimeout)
	for {
		leaked = g.newSince()
		if len(leaked) <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(pollInterval)
	}
	if len(leaked) > tolerance {
		g.t.Errorf("%d goroutine(s) leaked (tolerance %d):\n%s", len(leaked), tolerance, strings.Join(leaked, "\n"))
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines polls until runtime.NumGoroutine is at most target.
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for runtime.NumGoroutine() > target {
		if time.Now().After(deadline) {
			t.Errorf("goroutines did not drain: current=%d target=%d", runtime.NumGoroutine(), target)
			return
		}
		time.Sleep(pollInterval)
	}
}

func (g *GoroutineChecker) newSince() []string {
	var out []string
	for id, frame := range goroutineFrames() {
		if !g.before[id] {
			out = append(out, "goroutine "+id+": "+frame)
		}
	}
	return out
}

func goroutineIDs() map[string]bool {
	ids := make(map[string]bool)
	for id := range goroutineFrames() {
		ids[id] = true
	}
	return ids
}

// goroutineFrames maps goroutine id to its innermost non-runtime function,
// skipping the calling goroutine.
func goroutineFrames() map[string]string {
	buf := make([]byte, 1<<16)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	self := currentID()
	frames := make(map[string]string)
	for _, block := range bytes.Split(buf, []byte("\n\n")) {
		lines := strings.Split(string(block), "\n")
		// "goroutine 42 [chan receive]:"
		fields := strings.Fields(lines[0])
		if len(fields) < 2 || fields[0] != "goroutine" || fields[1] == self {
			continue
		}
		frames[fields[1]] = firstUserFrame(lines[1:])
	}
	return frames
}

// firstUserFrame skips scheduler frames; file:line lines are tab-indented.
func firstUserFrame(lines []string) string {
	fallback := ""
	for _, l := range lines {
		if l == "" || strings.HasPrefix(l, "\t") {
			continue
		}
		if fallback == "" {
			fallback = l
		}
		if !strings.HasPrefix(l, "runtime.") {
			return l
		}
	}
	return fallback
}

func currentID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	fields := strings.Fields(string(buf))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
