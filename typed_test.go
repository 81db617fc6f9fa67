package libemit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userJoined struct {
	ID   int
	Name string
}

var (
	evGreet    = NewEvent[string]("greet")
	evJoined   = NewEvent[userJoined]("user.joined")
	evShutdown = NewEvent[Void]("shutdown")
)

func TestBusDeliversTypedPayloads(t *testing.T) {
	bus := NewBus()
	greetings := new(recorder[string])
	joins := new(recorder[userJoined])

	OnFunc(bus, evGreet, greetings.Handle)
	OnFunc(bus, evJoined, joins.Handle)

	Emit(bus, evGreet, "Ann")
	Emit(bus, evJoined, userJoined{ID: 1, Name: "Bo"})

	assert.Equal(t, []string{"Ann"}, greetings.received)
	assert.Equal(t, []userJoined{{ID: 1, Name: "Bo"}}, joins.received)
}

func TestBusSameNameDifferentPayloadTypesAreDistinct(t *testing.T) {
	bus := NewBus()
	asString := new(recorder[string])
	asInt := new(recorder[int])

	OnFunc(bus, NewEvent[string]("value"), asString.Handle)
	OnFunc(bus, NewEvent[int]("value"), asInt.Handle)

	Emit(bus, NewEvent[int]("value"), 9)

	assert.Empty(t, asString.received)
	assert.Equal(t, []int{9}, asInt.received)
}

func TestBusSignal(t *testing.T) {
	bus := NewBus()
	calls := 0

	OnFunc(bus, evShutdown, func(Void) { calls++ })
	Signal(bus, evShutdown)
	Signal(bus, evShutdown)

	assert.Equal(t, 2, calls)
}

func TestBusOffAndOnce(t *testing.T) {
	bus := NewBus()
	rec := new(recorder[string])
	once := new(recorder[string])

	l := NewListener(rec.Handle)
	On(bus, evGreet, l)
	On(bus, evGreet, l)
	Once(bus, evGreet, NewListener(once.Handle))
	require.Equal(t, 3, ListenerCount(bus, evGreet))

	Emit(bus, evGreet, "a")
	Off(bus, evGreet, l)
	Emit(bus, evGreet, "b")

	assert.Equal(t, []string{"a", "a"}, rec.received)
	assert.Equal(t, []string{"a"}, once.received)
	assert.Zero(t, ListenerCount(bus, evGreet))
}

func TestBusOperationsOnUndeclaredEventsAreNoops(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		Emit(bus, evJoined, userJoined{})
		Off(bus, evJoined, NewListener(func(userJoined) {}))
		Signal(bus, evShutdown)
	})
	assert.Zero(t, ListenerCount(bus, evJoined))
}

func TestBusGreetScenario(t *testing.T) {
	bus := NewBus()
	var log []string

	OnFunc(bus, evGreet, func(name string) { log = append(log, "hi "+name) })
	Emit(bus, evGreet, "Ann")
	OnceFunc(bus, evGreet, func(string) { log = append(log, "once") })
	Emit(bus, evGreet, "Bo")
	Emit(bus, evGreet, "Cy")

	assert.Equal(t, []string{"hi Ann", "hi Bo", "once", "hi Cy"}, log)
}

func TestBusSharesOptionsAcrossEvents(t *testing.T) {
	var buf bytes.Buffer
	var reported []error
	bus := NewBus(
		WithLogger(NewWriterLogger(&buf)),
		WithMaxListeners(1),
		WithRecover(true),
		WithErrorHandler(func(err error) { reported = append(reported, err) }),
	)

	OnFunc(bus, evGreet, func(string) { panic("greet") })
	OnFunc(bus, evJoined, func(userJoined) { panic("joined") })
	OnFunc(bus, evJoined, func(userJoined) {})

	Emit(bus, evGreet, "x")
	Emit(bus, evJoined, userJoined{})

	require.Len(t, reported, 2)
	for _, err := range reported {
		assert.ErrorIs(t, err, ErrListenerPanic)
	}
	assert.Contains(t, buf.String(), "possible listener leak: 2 listeners registered for user.joined, max is 1")
}

func TestBusClose(t *testing.T) {
	bus := NewBus()
	rec := new(recorder[string])

	OnFunc(bus, evGreet, rec.Handle)
	bus.Close()
	Emit(bus, evGreet, "lost")

	assert.Empty(t, rec.received)
	assert.Zero(t, ListenerCount(bus, evGreet))
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "user.joined", evJoined.Name())
	assert.Equal(t, "user.joined", evJoined.String())
}

func TestZeroValueBusIsUsable(t *testing.T) {
	var bus Bus
	rec := new(recorder[string])

	assert.NotPanics(t, func() {
		OnFunc(&bus, evGreet, rec.Handle)
		Emit(&bus, evGreet, "Ann")
	})

	assert.Equal(t, []string{"Ann"}, rec.received)
	assert.Equal(t, 1, ListenerCount(&bus, evGreet))
}
