package query

import (
	"context"
	"time"
)

// Subscription is a running poller. Stop cancels it and waits for the loop to exit.
type Subscription struct {
	cancel  context.CancelFunc
	done    chan struct{}
	refresh chan struct{}
}

func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Refresh asks for an immediate refetch without waiting for the next tick.
func (s *Subscription) Refresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Poll observes q and refetches it every interval until ctx is cancelled or
// Stop is called. The first fetch happens immediately. fn runs on the poller
// goroutine after every fetch.
func Poll[T any](ctx context.Context, q *Query[T], interval time.Duration, fn func(T, error)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel:  cancel,
		done:    make(chan struct{}),
		refresh: make(chan struct{}, 1),
	}

	release := q.Observe()
	go func() {
		defer close(sub.done)
		defer release()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		tick := func() {
			value, err := q.Refetch(ctx)
			if ctx.Err() != nil {
				return
			}
			q.client.metrics.PollTick(q.key.Entity(), err)
			if fn != nil {
				fn(value, err)
			}
		}

		tick()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick()
			case <-sub.refresh:
				tick()
			}
		}
	}()
	return sub
}
