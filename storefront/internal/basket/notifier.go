package basket

import (
	"sync"

	"overcooked-client/storefront/internal/domain"
)

type Listener func(items []domain.BasketItem)

// Notifier fans a change out to every subscriber. It knows nothing about
// where the basket is stored.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

func NewNotifier() *Notifier {
	return &Notifier{listeners: map[int]Listener{}}
}

func (n *Notifier) Subscribe(fn Listener) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

func (n *Notifier) Broadcast(items []domain.BasketItem) {
	n.mu.Lock()
	listeners := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		snapshot := append([]domain.BasketItem(nil), items...)
		l(snapshot)
	}
}
