// Package message assembles log messages and delivers them to a logger.
//
// A message is a field mapping optionally bound to an originating
// action. Binding merges the action's identification fields and stamps
// the message with the action's next counter value, which is what lets
// consumers order messages within one action after the fact.
package message

import (
	"github.com/aretw0/causeway/pkg/domain"
	"github.com/aretw0/causeway/pkg/ports"
)

// Origin is the slice of an action a message needs: identity within the
// task tree plus the per-action message counter. Implemented by
// action.Action.
type Origin interface {
	TaskUUID() string
	TaskLevel() string
	NextMessageCounter() int
}

// Message is a field mapping plus an optional serializer, ready to be
// written to a logger.
type Message struct {
	fields     domain.Fields
	serializer ports.Serializer
}

// New creates a message from the given fields. The fields map is cloned;
// later caller mutations do not leak into the message.
func New(fields domain.Fields, serializer ports.Serializer) Message {
	if fields == nil {
		fields = domain.Fields{}
	}
	return Message{fields: fields.Clone(), serializer: serializer}
}

// Write delivers the message to the logger. When origin is non-nil the
// origin's task identity is merged in and the message consumes one
// counter value. The serializer, if any, runs over the complete field
// mapping last; its error is returned unwrapped and nothing is written.
func (m Message) Write(logger ports.Logger, origin Origin) error {
	fields := m.fields.Clone()
	if origin != nil {
		fields[domain.FieldTaskUUID] = origin.TaskUUID()
		fields[domain.FieldTaskLevel] = origin.TaskLevel()
		fields[domain.FieldMessageCounter] = origin.NextMessageCounter()
	}
	if m.serializer != nil {
		transformed, err := m.serializer(fields)
		if err != nil {
			return err
		}
		fields = transformed
	}
	return logger.Write(fields)
}

// Log is a convenience for writing a one-off message within an action's
// context: message fields plus the origin's identity, no serializer.
func Log(logger ports.Logger, origin Origin, fields domain.Fields) error {
	return New(fields, nil).Write(logger, origin)
}
