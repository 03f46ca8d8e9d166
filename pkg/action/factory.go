package action

import (
	"github.com/google/uuid"

	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/ports"
)

// StartOption configures how StartTask and StartAction start an action.
type StartOption func(*startConfig)

type startConfig struct {
	fields      domain.Fields
	serializers *ports.ActionSerializers
}

// WithFields adds extra fields to the start message.
func WithFields(fields domain.Fields) StartOption {
	return func(c *startConfig) {
		if c.fields == nil {
			c.fields = domain.Fields{}
		}
		c.fields.Merge(fields)
	}
}

// WithSerializers attaches the validation/transformation triple for the
// action's start, success and failure messages.
func WithSerializers(s ports.ActionSerializers) StartOption {
	return func(c *startConfig) {
		c.serializers = &s
	}
}

// StartTask creates and starts a new top-level action with a fresh
// random task UUID and the root level "/". The returned action is
// already started; the caller decides how to scope and finish it. A
// start-serializer rejection is returned and no action is handed back.
func StartTask(logger ports.Logger, actionType string, opts ...StartOption) (*Action, error) {
	cfg := applyStartOptions(opts)
	act := newAction(logger, uuid.NewString(), domain.RootLevel, actionType, cfg.serializers)
	if err := act.start(cfg.fields); err != nil {
		return nil, err
	}
	return act, nil
}

// StartAction creates and starts a child of the scope's current action,
// or behaves exactly like StartTask when the scope is empty (or nil).
// The parent's children count is consumed before the start message is
// attempted, so sibling levels stay stable even if a serializer rejects
// one of them.
func StartAction(scope *Scope, logger ports.Logger, actionType string, opts ...StartOption) (*Action, error) {
	parent := scope.Current()
	if parent == nil {
		return StartTask(logger, actionType, opts...)
	}
	cfg := applyStartOptions(opts)
	act := parent.Child(logger, actionType, cfg.serializers)
	if err := act.start(cfg.fields); err != nil {
		return nil, err
	}
	return act, nil
}

func applyStartOptions(opts []StartOption) startConfig {
	var cfg startConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
