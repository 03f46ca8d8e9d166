// Package redis provides a destination pushing serialized messages onto
// a Redis list, plus a drain helper for consumers on the other side.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/causeway/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Destination implements ports.Logger using Redis.
type Destination struct {
	client  *backend.Client
	key     string
	cap     int64
	timeout time.Duration
}

type Option func(*Destination)

// WithKey sets the list key messages are pushed to.
func WithKey(key string) Option {
	return func(d *Destination) {
		d.key = key
	}
}

// WithCap bounds the list length; older messages are trimmed away once
// the cap is exceeded. Zero means unbounded.
func WithCap(n int64) Option {
	return func(d *Destination) {
		d.cap = n
	}
}

// WithTimeout sets the per-write deadline. The Logger contract carries
// no context, so the destination owns its own.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Destination) {
		d.timeout = timeout
	}
}

// New creates a new Redis destination with options.
func New(address, password string, db int, opts ...Option) *Destination {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis destination from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Destination {
	dest := &Destination{
		client:  client,
		key:     "causeway:messages",
		timeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(dest)
	}

	return dest
}

// Write pushes the JSON-encoded message onto the list, trimming to the
// configured cap in the same pipeline.
func (d *Destination) Write(fields domain.Fields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	pipe := d.client.Pipeline()
	pipe.RPush(ctx, d.key, data)
	if d.cap > 0 {
		pipe.LTrim(ctx, d.key, -d.cap, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push to redis: %w", err)
	}
	return nil
}

// Drain pops up to n messages from the front of the list and decodes
// them. It returns what it got; an empty slice means the list is empty.
func (d *Destination) Drain(ctx context.Context, n int) ([]domain.Fields, error) {
	vals, err := d.client.LPopCount(ctx, d.key, n).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop from redis: %w", err)
	}

	out := make([]domain.Fields, 0, len(vals))
	for _, v := range vals {
		var fields domain.Fields
		if err := json.Unmarshal([]byte(v), &fields); err != nil {
			return out, fmt.Errorf("failed to decode message: %w", err)
		}
		out = append(out, fields)
	}
	return out, nil
}
