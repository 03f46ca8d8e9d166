// Package promise provides a minimal single-fire completion primitive
// satisfying ports.Completion, for programs that don't already have a
// future-like type to bridge actions onto.
package promise

import "sync"

// Promise settles exactly once, with either a value or an error, and
// fans the outcome out to every subscriber. Safe for concurrent use.
type Promise struct {
	mu          sync.Mutex
	settled     bool
	value       any
	err         error
	subscribers []func(value any, err error)
}

// New returns an unsettled promise.
func New() *Promise {
	return &Promise{}
}

// Resolve settles the promise successfully. Later Resolve or Reject
// calls are no-ops; the first settle wins.
func (p *Promise) Resolve(value any) {
	p.settle(value, nil)
}

// Reject settles the promise with a failure.
func (p *Promise) Reject(err error) {
	p.settle(nil, err)
}

// Subscribe registers fn to run exactly once with the eventual outcome.
// If the promise has already settled, fn runs synchronously before
// Subscribe returns. Subscribers are invoked in registration order, on
// the goroutine that settles (or subscribes late).
func (p *Promise) Subscribe(fn func(value any, err error)) {
	p.mu.Lock()
	if p.settled {
		value, err := p.value, p.err
		p.mu.Unlock()
		fn(value, err)
		return
	}
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
}

func (p *Promise) settle(value any, err error) {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return
	}
	p.settled = true
	p.value = value
	p.err = err
	subs := p.subscribers
	p.subscribers = nil
	p.mu.Unlock()

	for _, fn := range subs {
		fn(value, err)
	}
}
