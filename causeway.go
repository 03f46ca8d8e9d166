package causeway

import (
	"errors"
	"log/slog"

	"github.com/aretw0/causeway/internal/logging"
	"github.com/aretw0/causeway/pkg/action"
	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/ports"
)

// Log fans every written message out to a set of destinations. It
// implements ports.Logger, so it plugs straight into StartTask and
// StartAction. A destination failure is reported to the diagnostic
// logger and does not stop delivery to the remaining destinations;
// delivery guarantees are each destination's own problem.
type Log struct {
	destinations []ports.Logger
	logger       *slog.Logger
}

// Option defines a functional option for configuring a Log.
type Option func(*Log)

// WithDestination adds a destination. Destinations receive messages in
// the order they were added.
func WithDestination(d ports.Logger) Option {
	return func(l *Log) {
		l.destinations = append(l.destinations, d)
	}
}

// WithLogger sets the diagnostic logger used to report destination
// failures. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		l.logger = logger
	}
}

// New creates a fan-out Log over the configured destinations.
func New(opts ...Option) *Log {
	l := &Log{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Write delivers fields to every destination. Each destination gets its
// own clone, so one destination mutating the map cannot corrupt what
// the next one sees. The returned error joins every destination
// failure; callers on the action hot path typically ignore it beyond
// what the diagnostic logger already reported.
func (l *Log) Write(fields domain.Fields) error {
	var errs []error
	for _, d := range l.destinations {
		if err := d.Write(fields.Clone()); err != nil {
			l.logger.Error("destination write failed",
				"error", err,
				"action_type", fields[domain.FieldActionType],
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Re-exported lifecycle API, so simple programs only import the root
// package.

type (
	// Action is an alias for the lifecycle core's Action.
	Action = action.Action
	// Scope is an alias for the per-goroutine execution scope.
	Scope = action.Scope
	// Fields is an alias for the message field mapping.
	Fields = domain.Fields
)

// NewScope returns an empty execution scope for the calling goroutine.
func NewScope() *Scope { return action.NewScope() }

// StartTask starts a new top-level action. See action.StartTask.
func StartTask(logger ports.Logger, actionType string, opts ...action.StartOption) (*Action, error) {
	return action.StartTask(logger, actionType, opts...)
}

// StartAction starts a child of the scope's current action, or a new
// task when the scope is empty. See action.StartAction.
func StartAction(scope *Scope, logger ports.Logger, actionType string, opts ...action.StartOption) (*Action, error) {
	return action.StartAction(scope, logger, actionType, opts...)
}

// WithFields adds extra fields to the start message.
var WithFields = action.WithFields

// WithSerializers attaches a validation triple to the started action.
var WithSerializers = action.WithSerializers
