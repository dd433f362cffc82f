package steal

// Lend steals the value, hands it to fn, and returns it when fn finishes.
// The return happens in a deferred call, so the cell is refilled even when fn
// panics. Because the steal and return sites are fixed, Lend is the form that
// cannot trip the lost-guard net.
//
// fn receives a pointer to the stolen value; a nil fn borrows and returns
// without touching it. Panics like Steal if the cell is already stolen.
func (c *Cell[T]) Lend(fn func(*T)) {
	g := c.steal(callerPC(3))
	defer c.ReturnStolen(g)
	if fn == nil {
		return
	}
	fn(g.Ref())
}
