package conical

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configures a List.
type Options struct {
	// HeadCapacity is the initial number of level slots in the head vector.
	HeadCapacity int

	// Log, when set, receives debug tracing of level activation, head vector
	// reallocation and teardown.
	Log logger.Logger
}

type payloadOptions[E any] struct {
	destroy func(E)
}

// Option is a generic option type. Each option type asserts to the options
// record it targets and ignores any other.
type Option func(any)

func WithHeadCapacity(capacity int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.HeadCapacity = capacity
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

// WithDestructor registers fn to run exactly once per payload, when the node
// holding it is torn down. E must match the list's element type, otherwise
// the option is ignored.
func WithDestructor[E any](fn func(E)) Option {
	return func(opts any) {
		if o, ok := opts.(*payloadOptions[E]); ok {
			o.destroy = fn
		}
	}
}
