package steal

import "fmt"

// ViolationKind identifies which part of the ownership contract was broken.
type ViolationKind int

const (
	// ViolationKindUnknown guards against zero-valued kinds so handlers can
	// detect payloads this package did not produce.
	ViolationKindUnknown ViolationKind = iota
	// ViolationKindDoubleSteal reports Steal called on a cell that is already
	// stolen.
	ViolationKindDoubleSteal
	// ViolationKindAccessWhileStolen reports a value accessor called on a
	// stolen cell.
	ViolationKindAccessWhileStolen
	// ViolationKindReturnIntoFull reports ReturnStolen called on a cell that
	// still holds its value.
	ViolationKindReturnIntoFull
	// ViolationKindReturnOfEmptyGuard reports ReturnStolen called with a guard
	// whose value was already taken back.
	ViolationKindReturnOfEmptyGuard
	// ViolationKindGuardAfterReturn reports a guard used after its value was
	// returned to a cell.
	ViolationKindGuardAfterReturn
	// ViolationKindLostGuard reports a guard that became unreachable while
	// still carrying its value.
	ViolationKindLostGuard
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationKindDoubleSteal:
		return "double-steal"
	case ViolationKindAccessWhileStolen:
		return "access-while-stolen"
	case ViolationKindReturnIntoFull:
		return "return-into-full"
	case ViolationKindReturnOfEmptyGuard:
		return "return-of-empty-guard"
	case ViolationKindGuardAfterReturn:
		return "guard-after-return"
	case ViolationKindLostGuard:
		return "lost-guard"
	default:
		return "unknown"
	}
}

// Violation is the payload of every panic raised by this package. Misusing a
// cell is a programming error, not a runtime condition, so violations are
// never returned as error values; the type exists so crash handlers and tests
// can attribute the failure precisely.
type Violation struct {
	Kind ViolationKind
	Cell string // diagnostic name of the cell involved, e.g. "steal.Cell[main.Thing]"
	Site string // file:line of the Steal that created the relevant guard, when known
}

// Error renders the violation using the package's fixed diagnostic wording.
func (v *Violation) Error() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ViolationKindDoubleSteal, ViolationKindAccessWhileStolen:
		if v.Site != "" {
			return fmt.Sprintf("steal: value already stolen from %s (stolen at %s)", v.Cell, v.Site)
		}
		return fmt.Sprintf("steal: value already stolen from %s", v.Cell)
	case ViolationKindReturnIntoFull:
		return fmt.Sprintf("steal: trying to return a stolen value, but the cell is not empty: %s", v.Cell)
	case ViolationKindReturnOfEmptyGuard:
		return fmt.Sprintf("steal: trying to return a stolen value, but it was already returned: %s", v.Cell)
	case ViolationKindGuardAfterReturn:
		return fmt.Sprintf("steal: use of a stolen value after it was returned to %s", v.Cell)
	case ViolationKindLostGuard:
		if v.Site != "" {
			return fmt.Sprintf("steal: a stolen value was lost without being returned (stolen at %s from %s)", v.Site, v.Cell)
		}
		return fmt.Sprintf("steal: a stolen value was lost without being returned (from %s)", v.Cell)
	default:
		return fmt.Sprintf("steal: contract violation on %s", v.Cell)
	}
}
