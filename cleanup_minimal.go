//go:build steal_minimal

package steal

// leakState is empty under the steal_minimal tag: guards carry no runtime
// cleanup and lost guards go undetected. Every explicit contract check still
// panics exactly as in the default build.
type leakState struct{}

func (g *Stolen[T]) arm(*leakInfo) {}

func (g *Stolen[T]) disarm() {}
