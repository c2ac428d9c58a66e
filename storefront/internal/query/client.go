package query

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"overcooked-client/storefront/internal/metrics"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type Fetcher func(ctx context.Context) (any, error)

// State is a snapshot of one cache entry.
type State struct {
	Data      any
	Err       error
	IsLoading bool
	IsError   bool
	IsStale   bool
	UpdatedAt time.Time
}

type entry struct {
	key       Key
	fetch     Fetcher
	data      any
	err       error
	loading   int
	stale     bool
	fetched   bool
	gen       uint64
	updatedAt time.Time
	observers int
}

// Client caches query results by Key. Concurrent fetches of one key share a
// single backend call; invalidation marks entries stale and refetches the
// observed ones before returning.
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewClient(m *metrics.Metrics) *Client {
	return &Client{
		entries: make(map[string]*entry),
		metrics: m,
		now:     time.Now,
	}
}

// lookup returns the entry for key, creating it; a non-nil fetch replaces the stored one.
func (c *Client) lookup(key Key, fetch Fetcher) *entry {
	id := key.String()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: append(Key(nil), key...)}
		c.entries[id] = e
	}
	if fetch != nil {
		e.fetch = fetch
	}
	return e
}

// WithClock replaces the time source used for stale times; used by tests.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Fetch returns the cached value for key when it is fresh and loads it otherwise.
func (c *Client) Fetch(ctx context.Context, key Key, fetch Fetcher) (any, error) {
	return c.FetchWithin(ctx, key, fetch, 0)
}

// FetchWithin is Fetch with a stale time: a cached value older than maxAge is
// reloaded. maxAge <= 0 keeps values until they are invalidated.
func (c *Client) FetchWithin(ctx context.Context, key Key, fetch Fetcher, maxAge time.Duration) (any, error) {
	c.mu.Lock()
	e := c.lookup(key, fetch)
	if e.fetched && !e.stale && e.err == nil && (maxAge <= 0 || c.now().Sub(e.updatedAt) < maxAge) {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()
	return c.load(ctx, e)
}

// Refetch forces a new backend call for key using the last registered fetcher.
func (c *Client) Refetch(ctx context.Context, key Key) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key.String()]
	if !ok || e.fetch == nil {
		c.mu.Unlock()
		return nil, nil
	}
	e.stale = true
	e.gen++
	c.mu.Unlock()
	return c.load(ctx, e)
}

// load joins or starts the flight for the entry's current generation. The
// shared call runs detached from any one caller's cancellation; each caller
// stops waiting when its own ctx ends.
func (c *Client) load(ctx context.Context, e *entry) (any, error) {
	c.mu.Lock()
	gen := e.gen
	fetch := e.fetch
	flightKey := e.key.String() + "#" + strconv.FormatUint(gen, 10)
	c.mu.Unlock()

	fetchCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flightKey, func() (any, error) {
		c.mu.Lock()
		e.loading++
		c.mu.Unlock()

		start := c.now()
		data, err := fetch(fetchCtx)
		c.metrics.ObserveFetch(e.key.Entity(), c.now().Sub(start), err)

		c.mu.Lock()
		defer c.mu.Unlock()
		e.loading--
		// A newer generation was requested while this call was in flight.
		if e.gen != gen {
			return data, err
		}
		if err != nil {
			e.err = err
			return data, err
		}
		e.data = data
		e.err = nil
		e.stale = false
		e.fetched = true
		e.updatedAt = c.now()
		return data, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.SharedFetch(e.key.Entity())
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Observe registers interest in key so invalidations refetch it eagerly.
func (c *Client) Observe(key Key, fetch Fetcher) (release func()) {
	c.mu.Lock()
	e := c.lookup(key, fetch)
	e.observers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			e.observers--
			c.mu.Unlock()
		})
	}
}

// Invalidate marks every entry under the given prefixes stale and refetches
// the observed ones concurrently. It returns once those refetches finish.
func (c *Client) Invalidate(ctx context.Context, prefixes ...Key) error {
	var refetch []*entry

	c.mu.Lock()
	for _, e := range c.entries {
		for _, prefix := range prefixes {
			if !e.key.HasPrefix(prefix) {
				continue
			}
			e.stale = true
			e.gen++
			c.metrics.Invalidated(e.key.Entity())
			if e.observers > 0 && e.fetch != nil {
				refetch = append(refetch, e)
			}
			break
		}
	}
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range refetch {
		e := e
		g.Go(func() error {
			if _, err := c.load(gctx, e); err != nil {
				log.Printf("[storefront] refetch of %s after invalidation failed: %v", e.key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (c *Client) State(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return State{IsStale: true}
	}
	return State{
		Data:      e.data,
		Err:       e.err,
		IsLoading: e.loading > 0,
		IsError:   e.err != nil,
		IsStale:   e.stale || !e.fetched,
		UpdatedAt: e.updatedAt,
	}
}

// SetData seeds an entry as if it had just been fetched.
func (c *Client) SetData(key Key, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.lookup(key, nil)
	e.gen++
	e.data = data
	e.err = nil
	e.stale = false
	e.fetched = true
	e.updatedAt = c.now()
}
