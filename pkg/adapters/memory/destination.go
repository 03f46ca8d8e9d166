// Package memory provides an in-memory capturing destination, the
// backbone of the test suite and of programs that inspect their own
// log stream.
package memory

import (
	"sync"

	"github.com/aretw0/causeway/pkg/domain"
)

// Destination implements ports.Logger in memory.
// Safe for concurrent use.
type Destination struct {
	messages []domain.Fields
	mu       sync.RWMutex
}

// NewDestination creates a new in-memory destination.
func NewDestination() *Destination {
	return &Destination{}
}

// Write appends a copy of fields to the captured stream.
func (d *Destination) Write(fields domain.Fields) error {
	// Deep copy on write so later caller mutations don't reach the capture
	copied := fields.Clone()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, copied)
	return nil
}

// Messages returns a snapshot of everything captured so far, in write
// order. The returned slice and maps are copies; callers can mutate
// them freely.
func (d *Destination) Messages() []domain.Fields {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Fields, len(d.messages))
	for i, m := range d.messages {
		out[i] = m.Clone()
	}
	return out
}

// Len reports how many messages were captured.
func (d *Destination) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.messages)
}

// Reset drops everything captured so far.
func (d *Destination) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = nil
}
