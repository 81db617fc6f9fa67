package libemit

// EventEmitter is the contract shared by Emitter and NoopEmitter.
type EventEmitter[K comparable, V any] interface {
	// On registers a new listener for the given event.
	On(event K, listener *Listener[V])

	// Off removes every registration of the listener from the given event.
	Off(event K, listener *Listener[V])

	// Once registers a listener that is removed right before its first invocation.
	Once(event K, listener *Listener[V]) *Listener[V]

	// Emit triggers all listeners registered for the given event synchronously.
	Emit(event K, data V)

	// ListenerCount returns how many listeners are registered for the given event.
	ListenerCount(event K) int

	// RemoveAllListeners removes all listeners of the given event.
	RemoveAllListeners(event K)

	// Close removes all listeners for all events.
	Close()
}

var (
	_ EventEmitter[string, any] = (*Emitter[string, any])(nil)
	_ EventEmitter[string, any] = NoopEmitter[string, any]{}
)

// NoopEmitter accepts registrations and drops them; Emit never calls anything.
type NoopEmitter[K comparable, V any] struct{}

func (NoopEmitter[K, V]) On(K, *Listener[V]) {}

func (NoopEmitter[K, V]) Off(K, *Listener[V]) {}

// Once returns listener itself; nothing is registered, so there is no wrapper.
func (NoopEmitter[K, V]) Once(_ K, listener *Listener[V]) *Listener[V] { return listener }

func (NoopEmitter[K, V]) Emit(K, V) {}

func (NoopEmitter[K, V]) ListenerCount(K) int { return 0 }

func (NoopEmitter[K, V]) RemoveAllListeners(K) {}

func (NoopEmitter[K, V]) Close() {}
