package steal

import (
	"fmt"

	"github.com/google/uuid"
)

// Cell owns a value of type T that can be stolen out temporarily through a
// Stolen guard and must be returned before the cell is used again. Every
// misuse of that contract panics with a *Violation.
//
// The zero Cell is ready to use and holds the zero value of T. A Cell must
// not be copied after first use and is not safe for concurrent use; both the
// cell and its guards belong to a single goroutine.
type Cell[T any] struct {
	value  T
	stolen bool

	label       string
	name        string // cached diagnostic type name
	lastStealPC uintptr
	observers   Observers
}

type cellConfig struct {
	label     string
	observers Observers
}

// CellOption configures a cell at construction time.
type CellOption func(*cellConfig)

func applyCellOptions(opts []CellOption) cellConfig {
	cfg := cellConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLabel names the cell in diagnostics and transition events. Useful when
// several cells share a value type.
func WithLabel(label string) CellOption {
	return func(cfg *cellConfig) {
		cfg.label = label
	}
}

// NewCell constructs a full cell holding value. The cell is returned by value
// so it can live inline in the owning struct.
func NewCell[T any](value T, opts ...CellOption) Cell[T] {
	cfg := applyCellOptions(opts)
	return Cell[T]{
		value:     value,
		label:     cfg.label,
		observers: cfg.observers,
	}
}

// Steal moves the value out of the cell into a guard, leaving the cell empty.
// The guard must be given back through ReturnStolen exactly once. Panics if
// the cell is already stolen.
func (c *Cell[T]) Steal() *Stolen[T] {
	return c.steal(callerPC(3))
}

func (c *Cell[T]) steal(pc uintptr) *Stolen[T] {
	if c.stolen {
		panic(&Violation{
			Kind: ViolationKindDoubleSteal,
			Cell: c.diag(),
			Site: formatSite(c.lastStealPC),
		})
	}

	g := &Stolen[T]{
		value:  c.value,
		origin: c.diag(),
		sitePC: pc,
	}
	var zero T
	c.value = zero
	c.stolen = true
	c.lastStealPC = pc

	if c.observers.Enabled() {
		g.id = uuid.NewString()
	}
	g.arm(&leakInfo{
		cell:      c.typeName(),
		label:     c.label,
		sitePC:    pc,
		guardID:   g.id,
		observers: c.observers,
	})
	c.emit(TransitionSteal, g.id, pc)
	return g
}

// ReturnStolen moves the value from the guard back into the cell, leaving the
// cell full and the guard spent. Panics if the cell is not empty or if the
// guard no longer holds its value; the guard's lost-guard report is cancelled
// even on those paths.
func (c *Cell[T]) ReturnStolen(g *Stolen[T]) {
	var value T
	taken := false
	if g != nil {
		value, taken = g.take()
	}
	if !c.stolen {
		panic(&Violation{Kind: ViolationKindReturnIntoFull, Cell: c.diag()})
	}
	if !taken {
		panic(&Violation{Kind: ViolationKindReturnOfEmptyGuard, Cell: c.diag()})
	}

	c.value = value
	c.stolen = false
	c.emit(TransitionReturn, g.id, g.sitePC)
}

// IsStolen reports whether the cell's value is currently out on a guard.
func (c *Cell[T]) IsStolen() bool {
	return c.stolen
}

// Get returns the cell's value. Panics if the value is currently stolen.
func (c *Cell[T]) Get() T {
	c.mustFull()
	return c.value
}

// Set replaces the cell's value. Panics if the value is currently stolen.
func (c *Cell[T]) Set(value T) {
	c.mustFull()
	c.value = value
}

// Ref returns a pointer to the value inside the cell so callers can mutate it
// without copying. The pointer must not be used across a Steal. Panics if the
// value is currently stolen.
func (c *Cell[T]) Ref() *T {
	c.mustFull()
	return &c.value
}

// Label returns the diagnostic label configured via WithLabel, or "".
func (c *Cell[T]) Label() string {
	return c.label
}

// String implements fmt.Stringer: the cell's diagnostic name, its state, and
// the value when one is present. It never panics and hands out no reference,
// so it is usable at any point for logging.
func (c *Cell[T]) String() string {
	if c.stolen {
		return c.diag() + " (stolen)"
	}
	return fmt.Sprintf("%s (full: %+v)", c.diag(), c.value)
}

func (c *Cell[T]) mustFull() {
	if c.stolen {
		panic(&Violation{
			Kind: ViolationKindAccessWhileStolen,
			Cell: c.diag(),
			Site: formatSite(c.lastStealPC),
		})
	}
}

func (c *Cell[T]) typeName() string {
	if c.name == "" {
		c.name = fmt.Sprintf("%T", *c)
	}
	return c.name
}

func (c *Cell[T]) diag() string {
	return diagName(c.typeName(), c.label)
}

func diagName(name, label string) string {
	if label == "" {
		return name
	}
	return label + " (" + name + ")"
}

func (c *Cell[T]) emit(op TransitionOp, guardID string, pc uintptr) {
	if !c.observers.Enabled() {
		return
	}
	c.observers.Observe(TransitionEvent{
		Op:      op,
		Cell:    c.typeName(),
		Label:   c.label,
		GuardID: guardID,
		Site:    formatSite(pc),
	})
}
