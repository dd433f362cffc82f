// Package steal provides a cell that lends its value out under an ownership
// contract: the value can be stolen into a guard, used, and must be returned
// before the cell is touched again. It exists for object graphs where a child
// needs to be mutated with access to its owner (or the owner passed to the
// child's methods) without aliasing the two.
//
// Contract:
//   - Steal empties the cell and hands the value to a *Stolen guard.
//   - ReturnStolen refills the cell from the guard, exactly once.
//   - Cell accessors while stolen, a second Steal, returning into a full
//     cell, reusing a spent guard, or losing a guard all panic with a
//     *Violation. Violations are programming errors; none are meant to be
//     recovered.
//
// Data flow:
//
//	Cell.Steal -> *Stolen -> use via Get/Set/Ref -> Cell.ReturnStolen
//
// Lend wraps the sequence in a deferred return for the common scoped case.
//
// Lost guards are detected by a runtime cleanup armed on every guard; the
// steal_minimal build tag removes that machinery for environments that cannot
// carry it, keeping every explicit check intact. Cells and guards belong to a
// single goroutine and must not be copied after first use.
package steal
