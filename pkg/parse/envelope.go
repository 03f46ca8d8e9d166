package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/causeway/pkg/domain"
)

// Envelope is the typed view of a message's identification fields.
// Everything else a message carries stays in the raw field map.
type Envelope struct {
	TaskUUID       string `mapstructure:"task_uuid"`
	TaskLevel      string `mapstructure:"task_level"`
	ActionType     string `mapstructure:"action_type"`
	ActionStatus   string `mapstructure:"action_status"`
	MessageCounter int    `mapstructure:"message_counter"`
	Exception      string `mapstructure:"exception"`
	Reason         string `mapstructure:"reason"`
}

// DecodeEnvelope extracts the identification fields from a raw message.
// Decoding is weakly typed because messages round-tripped through JSON
// come back with float64 counters.
func DecodeEnvelope(fields domain.Fields) (Envelope, error) {
	var env Envelope
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &env,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(fields)); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	return env, nil
}

// ParseLevel splits a task level path into its 1-based child indexes:
// "/" is empty, "/1/3/" is [1 3].
func ParseLevel(level string) ([]int, error) {
	if !strings.HasPrefix(level, "/") || !strings.HasSuffix(level, "/") {
		return nil, fmt.Errorf("malformed task level %q", level)
	}
	trimmed := strings.Trim(level, "/")
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, "/")
	indexes := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("malformed task level %q", level)
		}
		indexes[i] = n
	}
	return indexes, nil
}
