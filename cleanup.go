//go:build !steal_minimal

package steal

import (
	"runtime"
	"sync"
)

// leakState arms a runtime cleanup on each guard. The cleanup fires when a
// guard becomes unreachable while still holding its value, which is the only
// way to detect a lost guard without ownership tracking in the language.
type leakState struct {
	cleanup runtime.Cleanup
	armed   bool
}

func (g *Stolen[T]) arm(info *leakInfo) {
	g.leak.cleanup = runtime.AddCleanup(g, reportLostGuard, info)
	g.leak.armed = true
}

func (g *Stolen[T]) disarm() {
	if !g.leak.armed {
		return
	}
	g.leak.armed = false
	g.leak.cleanup.Stop()
}

// reportLostGuard runs on the runtime's cleanup goroutine. The default
// handler panics there, which no caller can recover; losing a guard ends the
// program just like any other contract violation.
func reportLostGuard(info *leakInfo) {
	site := formatSite(info.sitePC)
	info.observers.Observe(TransitionEvent{
		Op:      TransitionLost,
		Cell:    info.cell,
		Label:   info.label,
		GuardID: info.guardID,
		Site:    site,
	})

	v := &Violation{
		Kind: ViolationKindLostGuard,
		Cell: diagName(info.cell, info.label),
		Site: site,
	}

	lostGuardMu.Lock()
	handler := onLostGuard
	lostGuardMu.Unlock()
	handler(v)
}

var (
	lostGuardMu sync.Mutex
	onLostGuard = func(v *Violation) { panic(v) }
)

// setLostGuardHandler swaps the lost-guard handler and returns a restore
// func. Tests use it to catch reports that would otherwise take down the
// process. A nil fn restores the panicking default.
func setLostGuardHandler(fn func(*Violation)) func() {
	if fn == nil {
		fn = func(v *Violation) { panic(v) }
	}
	lostGuardMu.Lock()
	prev := onLostGuard
	onLostGuard = fn
	lostGuardMu.Unlock()
	return func() {
		lostGuardMu.Lock()
		onLostGuard = prev
		lostGuardMu.Unlock()
	}
}
