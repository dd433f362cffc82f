package steal

import "fmt"

// Stolen holds a value temporarily taken out of a Cell. The guard is the only
// way to put the value back; dropping it without calling ReturnStolen is a
// contract violation reported by the lost-guard net.
//
// A Stolen must stay on the goroutine that stole it and must not be copied.
type Stolen[T any] struct {
	value    T
	returned bool

	origin string  // diagnostic name of the owning cell
	sitePC uintptr // program counter of the Steal call that created this guard
	id     string  // correlation ID, minted only when the cell is observed
	leak   leakState
}

// leakInfo carries everything the lost-guard report needs. It must not
// reference the guard or the cell; either reference would keep the guard
// reachable and the report would never fire.
type leakInfo struct {
	cell      string
	label     string
	sitePC    uintptr
	guardID   string
	observers Observers
}

// Get returns the stolen value. Panics if the guard was already returned.
func (g *Stolen[T]) Get() T {
	g.mustLive()
	return g.value
}

// Set replaces the stolen value in place. Panics if the guard was already
// returned.
func (g *Stolen[T]) Set(value T) {
	g.mustLive()
	g.value = value
}

// Ref returns a pointer to the stolen value so callers can mutate it without
// copying. The pointer must not outlive the guard. Panics if the guard was
// already returned.
func (g *Stolen[T]) Ref() *T {
	g.mustLive()
	return &g.value
}

// ID returns the guard's correlation ID. Empty unless the owning cell had
// observers attached when the steal happened. Usable even after return.
func (g *Stolen[T]) ID() string {
	if g == nil {
		return ""
	}
	return g.id
}

// Site returns the file:line of the Steal call that created this guard, or ""
// when unknown. Usable even after return.
func (g *Stolen[T]) Site() string {
	if g == nil {
		return ""
	}
	return formatSite(g.sitePC)
}

// String implements fmt.Stringer: provenance, state, and the payload while the
// guard is live. It never panics, so it is safe at any point in the guard's
// life.
func (g *Stolen[T]) String() string {
	if g == nil {
		return "<nil>"
	}
	if g.returned {
		return "returned to " + g.origin
	}
	out := "stolen from " + g.origin
	if site := formatSite(g.sitePC); site != "" {
		out += " at " + site
	}
	return fmt.Sprintf("%s, holding %+v", out, g.value)
}

// take empties the guard and cancels its lost-guard report. Reports whether
// the guard still held its value. ReturnStolen calls this before any contract
// check so a failed return cannot fire the lost-guard report on top of the
// panic it is about to raise.
func (g *Stolen[T]) take() (T, bool) {
	var zero T
	if g.returned {
		return zero, false
	}
	g.returned = true
	g.disarm()
	value := g.value
	g.value = zero
	return value, true
}

func (g *Stolen[T]) mustLive() {
	if g == nil {
		var zero T
		panic(&Violation{
			Kind: ViolationKindGuardAfterReturn,
			Cell: fmt.Sprintf("steal.Cell[%T]", zero),
		})
	}
	if g.returned {
		panic(&Violation{Kind: ViolationKindGuardAfterReturn, Cell: g.origin})
	}
}
