package query

import (
	"context"
	"fmt"
	"time"
)

// Query is a typed view of one key in the cache.
type Query[T any] struct {
	client    *Client
	key       Key
	fetch     Fetcher
	staleTime time.Duration
}

func NewQuery[T any](client *Client, key Key, fetch func(ctx context.Context) (T, error)) *Query[T] {
	return &Query[T]{
		client: client,
		key:    key,
		fetch: func(ctx context.Context) (any, error) {
			return fetch(ctx)
		},
	}
}

// StaleAfter makes Get reload values older than d.
func (q *Query[T]) StaleAfter(d time.Duration) *Query[T] {
	q.staleTime = d
	return q
}

func (q *Query[T]) Key() Key {
	return q.key
}

func (q *Query[T]) Get(ctx context.Context) (T, error) {
	data, err := q.client.FetchWithin(ctx, q.key, q.fetch, q.staleTime)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](q.key, data)
}

func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	q.client.mu.Lock()
	q.client.lookup(q.key, q.fetch)
	q.client.mu.Unlock()

	data, err := q.client.Refetch(ctx, q.key)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](q.key, data)
}

func (q *Query[T]) Observe() (release func()) {
	return q.client.Observe(q.key, q.fetch)
}

// State returns the cached value, if any, together with the entry flags.
func (q *Query[T]) State() (T, State) {
	st := q.client.State(q.key)
	value, _ := st.Data.(T)
	return value, st
}

func cast[T any](key Key, data any) (T, error) {
	var zero T
	if data == nil {
		return zero, nil
	}
	value, ok := data.(T)
	if !ok {
		return zero, fmt.Errorf("query %s holds %T, not %T", key, data, zero)
	}
	return value, nil
}
