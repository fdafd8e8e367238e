package hoverbox

// Bound is a maximum-size limit that is either a fixed number or a
// zero-argument function producing one. Hosts use the dynamic form when
// the limit depends on live geometry (half the current screen width,
// say). The zero value means unbounded.
type Bound struct {
	value int
	fn    func() int
}

// FixedBound returns a Bound with a literal limit. A non-positive n
// means unbounded.
func FixedBound(n int) Bound {
	return Bound{value: n}
}

// DynamicBound returns a Bound whose limit is recomputed on every
// resolve.
func DynamicBound(fn func() int) Bound {
	return Bound{fn: fn}
}

// Resolve evaluates the bound. The Manager resolves each bound exactly
// once per display request, before measurement. A result <= 0 means
// unbounded.
func (b Bound) Resolve() int {
	if b.fn != nil {
		return b.fn()
	}
	return b.value
}
