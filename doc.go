// Package libemit provides a synchronous, in-process event emitter.
//
// Two flavours share one implementation. Emitter[K, V] maps keys of type K to listeners
// of payload type V:
//
//	e := libemit.NewEventEmitter[string, any]()
//	l := e.OnFunc("greet", func(v any) { fmt.Println("hi", v) })
//	e.Emit("greet", "Ann")
//	e.Off("greet", l)
//
// Bus works over declared events, each bound to its own payload type:
//
//	var greet = libemit.NewEvent[string]("greet")
//
//	bus := libemit.NewBus()
//	libemit.OnFunc(bus, greet, func(name string) { fmt.Println("hi", name) })
//	libemit.Emit(bus, greet, "Ann")
//
// Listeners run on the emitting goroutine, in registration order, over a snapshot of
// the registrations taken when Emit starts. Listener identity is the *Listener pointer.
package libemit
