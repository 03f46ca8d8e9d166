// Package file provides a JSON-lines destination writing one message
// per line to any io.Writer, typically a log file or os.Stdout.
package file

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/causeway/pkg/domain"
)

// Destination implements ports.Logger over an io.Writer. Writes are
// serialized by a mutex so interleaved goroutines can share one file.
type Destination struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// New creates a destination encoding messages as JSON lines on w.
func New(w io.Writer) *Destination {
	return &Destination{enc: json.NewEncoder(w)}
}

// Write encodes fields as a single JSON line.
func (d *Destination) Write(fields domain.Fields) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enc.Encode(fields); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	return nil
}
