package libemit

import (
	"github.com/stretchr/testify/mock"
)

// mockListener records invocations through testify's mock so tests can assert on
// payloads and call counts.
type mockListener[V any] struct {
	mock.Mock
}

func (m *mockListener[V]) Handle(data V) {
	m.Called(data)
}

func (m *mockListener[V]) Listener() *Listener[V] {
	return NewListener(m.Handle)
}

// recorder appends every received payload, in order.
type recorder[V any] struct {
	received []V
}

func (r *recorder[V]) Handle(data V) {
	r.received = append(r.received, data)
}
