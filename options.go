package libemit

type (
	// ErrorHandler receives listener failures recovered during Emit when WithRecover is on.
	ErrorHandler func(err error)

	// Option configures an Emitter or a Bus.
	Option func(*options)

	options struct {
		logger       Logger
		maxListeners int
		recover      bool
		errorHandler ErrorHandler
	}
)

func defaultOptions() options {
	return options{logger: NopLogger()}
}

func newOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger the emitter reports to. Nil keeps the no-op logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxListeners makes the emitter warn when an event holds more than n listeners,
// which usually points at a listener leak. Zero, the default, disables the check.
// Registration is never refused.
func WithMaxListeners(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxListeners = n
	}
}

// WithRecover isolates listeners from each other. When enabled, a panicking listener
// is reported as a *ListenerPanicError and delivery continues with the next listener.
// When disabled (the default) the panic propagates out of Emit and the remaining
// listeners of that emission do not run.
func WithRecover(enabled bool) Option {
	return func(o *options) {
		o.recover = enabled
	}
}

// WithErrorHandler sets where recovered listener failures are reported. Without it
// they are logged at error level.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.errorHandler = h
	}
}
