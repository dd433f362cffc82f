package steal

import (
	"strings"
	"testing"
)

func TestLendGivesMutableAccess(t *testing.T) {
	c := NewCell(thing{power: 2})

	c.Lend(func(v *thing) {
		v.power *= 10
	})

	if c.IsStolen() {
		t.Fatalf("cell should be full after Lend")
	}
	if got := c.Get().power; got != 20 {
		t.Fatalf("expected lend mutation to persist, got power %d", got)
	}
}

func TestLendStealsForTheDuration(t *testing.T) {
	c := NewCell(thing{power: 2})

	c.Lend(func(v *thing) {
		if !c.IsStolen() {
			t.Fatalf("cell should be stolen while lent out")
		}
		mustViolation(t, ViolationKindAccessWhileStolen, func() { c.Get() })
	})

	if c.IsStolen() {
		t.Fatalf("cell should be full again after Lend")
	}
}

func TestLendSiteIsLendCaller(t *testing.T) {
	c := NewCell(thing{})

	c.Lend(func(v *thing) {
		violation := mustViolation(t, ViolationKindAccessWhileStolen, func() { c.Get() })
		if !strings.Contains(violation.Site, "lend_test.go:") {
			t.Fatalf("expected the Lend call site, got %q", violation.Site)
		}
	})
}

func TestLendRestoresOnPanic(t *testing.T) {
	c := NewCell(thing{power: 5})

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected the lend body's panic, got %v", r)
			}
		}()
		c.Lend(func(v *thing) {
			v.power = 50
			panic("boom")
		})
	}()

	if c.IsStolen() {
		t.Fatalf("cell should be refilled even when the lend body panics")
	}
	if got := c.Get().power; got != 50 {
		t.Fatalf("mutations before the panic should survive, got power %d", got)
	}
}

func TestLendNilFn(t *testing.T) {
	c := NewCell(thing{power: 3})

	c.Lend(nil)

	if c.IsStolen() {
		t.Fatalf("nil lend body should still return the value")
	}
	if got := c.Get().power; got != 3 {
		t.Fatalf("value should be untouched, got power %d", got)
	}
}

func TestLendWhileStolenPanics(t *testing.T) {
	c := NewCell(thing{power: 3})
	g := c.Steal()

	mustViolation(t, ViolationKindDoubleSteal, func() {
		c.Lend(func(*thing) {})
	})

	c.ReturnStolen(g)
}

func TestLendNestedCells(t *testing.T) {
	outer := NewCell(thing{power: 1})
	inner := NewCell(thing{power: 10})

	outer.Lend(func(o *thing) {
		inner.Lend(func(i *thing) {
			o.power += i.power
		})
	})

	if got := outer.Get().power; got != 11 {
		t.Fatalf("expected nested lends to compose, got power %d", got)
	}
	if got := inner.Get().power; got != 10 {
		t.Fatalf("inner cell should be untouched, got power %d", got)
	}
}
