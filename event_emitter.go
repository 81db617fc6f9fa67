package libemit

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Emitter is a synchronous event emitter. It maps events (of type K) to ordered
// sequences of listeners receiving payloads of type V.
//
// Emit runs listeners inline on the caller's goroutine, in registration order, over a
// snapshot of the sequence taken when the emission starts: listeners added during an
// emission do not run in it, and listeners removed during an emission still run in it
// if they were captured. No lock is held while listeners run, so they may freely call
// back into the emitter.
//
// The zero value is an empty emitter with default options.
type Emitter[K comparable, V any] struct {
	listeners map[K][]*Listener[V]
	lock      sync.RWMutex
	opts      options
	logger    Logger
}

// NewEventEmitter creates a new Emitter and returns a pointer to it.
func NewEventEmitter[K comparable, V any](opts ...Option) *Emitter[K, V] {
	return newEventEmitter[K, V](newOptions(opts...))
}

func newEventEmitter[K comparable, V any](o options) *Emitter[K, V] {
	if o.logger == nil {
		o.logger = NopLogger()
	}
	return &Emitter[K, V]{
		listeners: make(map[K][]*Listener[V]),
		opts:      o,
		logger:    o.logger.WithField("type", "event_emitter"),
	}
}

func (e *Emitter[K, V]) log() Logger {
	if e.logger == nil {
		return NopLogger()
	}
	return e.logger
}

// On registers a new listener for the given event, after any already registered.
// Registering the same listener twice yields two entries, both invoked on Emit.
func (e *Emitter[K, V]) On(event K, listener *Listener[V]) {
	if listener == nil {
		return
	}

	e.lock.Lock()
	if e.listeners == nil {
		e.listeners = make(map[K][]*Listener[V])
	}
	e.listeners[event] = append(e.listeners[event], listener)
	count := len(e.listeners[event])
	e.lock.Unlock()

	e.log().Debugf("listener added to %v (%d total)", event, count)

	if limit := e.opts.maxListeners; limit > 0 && count > limit {
		e.log().Warnf(
			"possible listener leak: %d listeners registered for %v, max is %d",
			count, event, limit,
		)
	}
}

// OnFunc registers fn for the given event and returns its listener, which is the
// handle to pass to Off.
func (e *Emitter[K, V]) OnFunc(event K, fn func(V)) *Listener[V] {
	listener := NewListener(fn)
	e.On(event, listener)
	return listener
}

// Off removes every registration of listener from the given event, so one call undoes
// all duplicates added by repeated On calls. Removing a listener that is not registered
// is a no-op.
func (e *Emitter[K, V]) Off(event K, listener *Listener[V]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	current, found := e.listeners[event]
	if !found {
		return
	}

	// Build a fresh slice: snapshots held by running emissions share the old one.
	next := make([]*Listener[V], 0, len(current))
	for _, l := range current {
		if l != listener {
			next = append(next, l)
		}
	}

	if removed := len(current) - len(next); removed > 0 {
		e.log().Debugf("%d listener(s) removed from %v", removed, event)
	}

	if len(next) == 0 {
		delete(e.listeners, event)
		return
	}
	e.listeners[event] = next
}

// Once registers listener so that it fires at most once. The returned wrapper is what
// is actually registered; pass it to Off to cancel before it fires. The wrapper removes
// itself before calling listener, so a listener emitting the same event again does
// not see itself invoked twice.
func (e *Emitter[K, V]) Once(event K, listener *Listener[V]) *Listener[V] {
	if listener == nil {
		return nil
	}

	var (
		fired   atomic.Bool
		wrapper = &Listener[V]{}
	)

	wrapper.fn = func(data V) {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		e.Off(event, wrapper)
		listener.Call(data)
	}

	e.On(event, wrapper)

	return wrapper
}

// OnceFunc is Once for a bare func.
func (e *Emitter[K, V]) OnceFunc(event K, fn func(V)) *Listener[V] {
	return e.Once(event, NewListener(fn))
}

// Emit triggers all listeners registered for the given event synchronously, in
// registration order, passing data to each. The method returns once every listener
// has returned.
func (e *Emitter[K, V]) Emit(event K, data V) {
	e.lock.RLock()
	listeners := slices.Clone(e.listeners[event])
	e.lock.RUnlock()

	for _, listener := range listeners {
		e.dispatch(event, listener, data)
	}
}

func (e *Emitter[K, V]) dispatch(event K, listener *Listener[V], data V) {
	if e.opts.recover {
		defer func() {
			if err := WrapListenerPanic(event, recover()); err != nil {
				e.report(err)
			}
		}()
	}

	listener.Call(data)
}

func (e *Emitter[K, V]) report(err *ListenerPanicError) {
	if e.opts.errorHandler != nil {
		e.opts.errorHandler(err)
		return
	}
	e.log().Errorf("recovered from listener failure: %s", err)
}

// ListenerCount returns how many listeners are registered for the given event,
// duplicates included.
func (e *Emitter[K, V]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// EventNames returns the events that currently hold at least one listener, in no
// particular order.
func (e *Emitter[K, V]) EventNames() []K {
	e.lock.RLock()
	defer e.lock.RUnlock()

	names := make([]K, 0, len(e.listeners))
	for event := range e.listeners {
		names = append(names, event)
	}
	return names
}

// RemoveAllListeners removes every listener registered for the given event.
func (e *Emitter[K, V]) RemoveAllListeners(event K) {
	e.lock.Lock()
	defer e.lock.Unlock()

	delete(e.listeners, event)
}

// Close removes all listeners to prevent memory leaks. The emitter stays usable.
func (e *Emitter[K, V]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners = make(map[K][]*Listener[V])
}
