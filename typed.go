package libemit

import (
	"sync"
)

type (
	// Void is the payload of events that carry none.
	Void = struct{}

	// Event is a declared event key bound to its payload type T. Listeners and payloads
	// passed alongside it are checked against T at compile time. Two events sharing a
	// name but not a payload type are distinct keys.
	Event[T any] struct {
		name string
	}
)

// NewEvent declares an event named name carrying payloads of type T.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

func (ev Event[T]) Name() string { return ev.name }

func (ev Event[T]) String() string { return ev.name }

// Bus is an emitter over declared events, each with its own payload type. Go methods
// cannot take type parameters, so it is driven through the package functions On, Off,
// Once, Emit and Signal. The zero value is an empty bus with default options.
type Bus struct {
	opts     options
	mu       sync.Mutex
	emitters map[any]any // Event[T] -> *Emitter[Event[T], T]
}

// NewBus creates an empty Bus. Options apply to every event's emitter.
func NewBus(opts ...Option) *Bus {
	return &Bus{
		opts:     newOptions(opts...),
		emitters: make(map[any]any),
	}
}

// emitterOf returns the emitter backing ev, creating it when create is set. The key
// carries T in its dynamic type, so the assertion cannot fail.
func emitterOf[T any](b *Bus, ev Event[T], create bool) *Emitter[Event[T], T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if em, found := b.emitters[ev]; found {
		return em.(*Emitter[Event[T], T])
	}
	if !create {
		return nil
	}

	if b.emitters == nil {
		b.emitters = make(map[any]any)
	}
	em := newEventEmitter[Event[T], T](b.opts)
	b.emitters[ev] = em
	return em
}

// On registers listener for ev.
func On[T any](b *Bus, ev Event[T], listener *Listener[T]) {
	emitterOf(b, ev, true).On(ev, listener)
}

// OnFunc registers fn for ev and returns the listener handle.
func OnFunc[T any](b *Bus, ev Event[T], fn func(T)) *Listener[T] {
	return emitterOf(b, ev, true).OnFunc(ev, fn)
}

// Off removes every registration of listener from ev.
func Off[T any](b *Bus, ev Event[T], listener *Listener[T]) {
	if em := emitterOf(b, ev, false); em != nil {
		em.Off(ev, listener)
	}
}

// Once registers listener for a single invocation of ev and returns the registered
// wrapper.
func Once[T any](b *Bus, ev Event[T], listener *Listener[T]) *Listener[T] {
	return emitterOf(b, ev, true).Once(ev, listener)
}

// OnceFunc is Once for a bare func.
func OnceFunc[T any](b *Bus, ev Event[T], fn func(T)) *Listener[T] {
	return emitterOf(b, ev, true).OnceFunc(ev, fn)
}

// Emit delivers payload to the listeners of ev, synchronously and in registration order.
func Emit[T any](b *Bus, ev Event[T], payload T) {
	if em := emitterOf(b, ev, false); em != nil {
		em.Emit(ev, payload)
	}
}

// Signal emits a payload-less event.
func Signal(b *Bus, ev Event[Void]) {
	Emit(b, ev, Void{})
}

// ListenerCount returns how many listeners are registered for ev.
func ListenerCount[T any](b *Bus, ev Event[T]) int {
	if em := emitterOf(b, ev, false); em != nil {
		return em.ListenerCount(ev)
	}
	return 0
}

// Close removes every listener of every event.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.emitters = make(map[any]any)
}
