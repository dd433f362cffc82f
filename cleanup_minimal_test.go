//go:build steal_minimal

package steal

import "testing"

// The minimal build drops the lost-guard net; everything the contract checks
// explicitly must behave exactly as in the default build.
func TestMinimalBuildKeepsExplicitChecks(t *testing.T) {
	c := NewCell(thing{power: 1})

	g := c.Steal()
	mustViolation(t, ViolationKindDoubleSteal, func() { c.Steal() })
	mustViolation(t, ViolationKindAccessWhileStolen, func() { c.Get() })

	c.ReturnStolen(g)
	mustViolation(t, ViolationKindGuardAfterReturn, func() { g.Get() })

	if got := c.Get().power; got != 1 {
		t.Fatalf("expected power 1 after the cycle, got %d", got)
	}
}

func TestMinimalBuildLend(t *testing.T) {
	c := NewCell(thing{power: 2})
	c.Lend(func(v *thing) { v.power *= 3 })
	if got := c.Get().power; got != 6 {
		t.Fatalf("expected power 6, got %d", got)
	}
}
