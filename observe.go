package steal

import (
	"encoding/json"
	"time"
)

// TransitionOp identifies which ownership transition produced an event.
type TransitionOp int

const (
	// TransitionOpUnknown guards against zero-valued ops so observers can
	// detect events this package did not produce.
	TransitionOpUnknown TransitionOp = iota
	// TransitionSteal marks a value moving out of a cell into a guard.
	TransitionSteal
	// TransitionReturn marks a value moving back from a guard into its cell.
	TransitionReturn
	// TransitionLost marks a guard collected while still holding its value.
	TransitionLost
)

func (op TransitionOp) String() string {
	switch op {
	case TransitionSteal:
		return "steal"
	case TransitionReturn:
		return "return"
	case TransitionLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseTransitionOp converts a string representation into the corresponding
// TransitionOp. Returns TransitionOpUnknown for unrecognised values.
func ParseTransitionOp(value string) TransitionOp {
	switch value {
	case "steal", "STEAL":
		return TransitionSteal
	case "return", "RETURN":
		return TransitionReturn
	case "lost", "LOST":
		return TransitionLost
	default:
		return TransitionOpUnknown
	}
}

// MarshalText implements encoding.TextMarshaler so events serialise ops by
// name rather than ordinal.
func (op TransitionOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *TransitionOp) UnmarshalText(text []byte) error {
	*op = ParseTransitionOp(string(text))
	return nil
}

// TransitionEvent describes one ownership transition on a cell.
type TransitionEvent struct {
	Op      TransitionOp `json:"op"`
	Cell    string       `json:"cell"`
	Label   string       `json:"label,omitempty"`
	GuardID string       `json:"guard_id,omitempty"`
	Site    string       `json:"site,omitempty"`
	At      time.Time    `json:"at"`
}

// ToJSON serialises the event into JSON for logging or transport helpers.
func (e TransitionEvent) ToJSON() ([]byte, error) {
	type alias TransitionEvent
	return json.Marshal(alias(e))
}

// TransitionEventFromJSON deserialises a JSON payload that was previously
// generated via ToJSON.
func TransitionEventFromJSON(payload []byte) (TransitionEvent, error) {
	type alias TransitionEvent
	var event alias
	if err := json.Unmarshal(payload, &event); err != nil {
		return TransitionEvent{}, err
	}
	return TransitionEvent(event), nil
}

// TransitionObserver receives ownership transition events.
type TransitionObserver interface {
	ObserveTransition(TransitionEvent)
}

// TransitionObserverFunc adapts a function to TransitionObserver.
type TransitionObserverFunc func(TransitionEvent)

// ObserveTransition implements TransitionObserver.
func (f TransitionObserverFunc) ObserveTransition(event TransitionEvent) {
	if f != nil {
		f(event)
	}
}

// Observers fans out events to zero or more observers.
type Observers []TransitionObserver

// Enabled reports whether there are any observers to notify. Cells consult
// this before paying for per-event metadata such as guard IDs.
func (o Observers) Enabled() bool {
	return len(o) > 0
}

// Observe forwards the event to all observers, stamping a timestamp when the
// caller left it zero. Observers cannot veto a transition; the cell has
// already changed state by the time they run.
func (o Observers) Observe(event TransitionEvent) {
	if len(o) == 0 {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	for _, observer := range o {
		if observer == nil {
			continue
		}
		observer.ObserveTransition(event)
	}
}

// WithObserver attaches a transition observer to the cell. Passing nil is a
// no-op so call sites can forward optional observers unconditionally.
func WithObserver(observer TransitionObserver) CellOption {
	return func(cfg *cellConfig) {
		if observer == nil {
			return
		}
		cfg.observers = append(cfg.observers, observer)
	}
}
