package libemit

// Listener is a callback registered against an event. Listeners are always handled
// through pointers: the pointer is the listener's identity, which is what Off compares
// against. Wrapping the same func twice yields two distinct listeners.
type Listener[V any] struct {
	fn func(V)
}

// NewListener wraps fn into a new listener identity.
func NewListener[V any](fn func(V)) *Listener[V] {
	return &Listener[V]{fn: fn}
}

// Call invokes the wrapped callback. Nil listeners and nil callbacks are no-ops.
func (l *Listener[V]) Call(data V) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(data)
}
