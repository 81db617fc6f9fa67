package libemit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrListenerPanic = errors.New("listener panicked")
)

// ListenerPanicError is reported when a listener panics while WithRecover is enabled.
type ListenerPanicError struct {
	Event any
	Value any
	err   error
	cause error
}

func (e ListenerPanicError) Error() string {
	return fmt.Sprintf("%s on event %v: %v", e.err, e.Event, e.Value)
}

// Unwrap exposes ErrListenerPanic and, when the listener panicked with an error, that
// error too.
func (e ListenerPanicError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.cause}
}

func WrapListenerPanic(event any, value any) *ListenerPanicError {
	if value == nil {
		return nil
	}

	cause, _ := value.(error)

	return &ListenerPanicError{
		Event: event,
		Value: value,
		err:   ErrListenerPanic,
		cause: cause,
	}
}
