package query

import (
	"context"
	"log"
	"sync"
)

// Mutation runs a write and, only when it succeeds, invalidates the keys it
// names before returning.
type Mutation[In, Out any] struct {
	name        string
	client      *Client
	run         func(ctx context.Context, in In) (Out, error)
	invalidates func(in In, out Out) []Key

	mu      sync.Mutex
	pending int
	lastErr error
}

func NewMutation[In, Out any](client *Client, name string, run func(ctx context.Context, in In) (Out, error), invalidates func(in In, out Out) []Key) *Mutation[In, Out] {
	return &Mutation[In, Out]{
		name:        name,
		client:      client,
		run:         run,
		invalidates: invalidates,
	}
}

func (m *Mutation[In, Out]) Do(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	m.pending++
	m.mu.Unlock()

	out, err := m.run(ctx, in)
	m.client.metrics.ObserveMutation(m.name, err)
	if err == nil && m.invalidates != nil {
		// the write is committed; a caller going away must not turn it into a failure
		if keys := m.invalidates(in, out); len(keys) > 0 {
			if ierr := m.client.Invalidate(context.WithoutCancel(ctx), keys...); ierr != nil {
				log.Printf("WARNING: %s succeeded but invalidation failed: %v", m.name, ierr)
			}
		}
	}

	m.mu.Lock()
	m.pending--
	m.lastErr = err
	m.mu.Unlock()

	return out, err
}

func (m *Mutation[In, Out]) IsPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending > 0
}

func (m *Mutation[In, Out]) IsError() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr != nil
}

func (m *Mutation[In, Out]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
