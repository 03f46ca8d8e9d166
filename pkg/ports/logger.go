package ports

import "github.com/aretw0/causeway/pkg/domain"

// Logger accepts a fully-formed message field mapping. Implementations
// own timestamping, transport, and delivery guarantees. Delivery is
// synchronous from the caller's point of view and must not reach back
// into the originating action's state.
type Logger interface {
	Write(fields domain.Fields) error
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(fields domain.Fields) error

func (f LoggerFunc) Write(fields domain.Fields) error {
	return f(fields)
}
