package basket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"overcooked-client/storefront/internal/domain"
	"overcooked-client/storefront/internal/storage"
)

// Store is the customer's pre-order cart. Items are keyed by dish id and
// kept in insertion order; every change is broadcast to subscribers.
type Store struct {
	mu       sync.Mutex
	slot     storage.Slot
	notifier *Notifier
}

func NewStore(slot storage.Slot, notifier *Notifier) *Store {
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &Store{slot: slot, notifier: notifier}
}

func (s *Store) load(ctx context.Context) ([]domain.BasketItem, error) {
	raw, err := s.slot.Get(ctx, storage.KeyBasket)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return []domain.BasketItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read basket: %w", err)
	}
	var items []domain.BasketItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode basket: %w", err)
	}
	if items == nil {
		items = []domain.BasketItem{}
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []domain.BasketItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.slot.Set(ctx, storage.KeyBasket, raw); err != nil {
		return fmt.Errorf("write basket: %w", err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, item domain.BasketItem) error {
	if item.DishID == "" {
		return domain.NewValidationError("dishId", "is required")
	}
	if item.Quantity <= 0 {
		return domain.NewValidationError("quantity", "must be at least 1")
	}

	s.mu.Lock()
	items, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	merged := false
	for i := range items {
		if items[i].DishID == item.DishID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.save(ctx, items); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.Broadcast(items)
	return nil
}

// Remove deletes the entry for dishID. Unknown ids are a silent no-op.
func (s *Store) Remove(ctx context.Context, dishID string) error {
	s.mu.Lock()
	items, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.DishID != dishID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		s.mu.Unlock()
		return nil
	}

	if err := s.save(ctx, kept); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notifier.Broadcast(kept)
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	if err := s.slot.Delete(ctx, storage.KeyBasket); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("clear basket: %w", err)
	}
	s.mu.Unlock()

	s.notifier.Broadcast([]domain.BasketItem{})
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.BasketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}

func Total(items []domain.BasketItem) float64 {
	var total float64
	for _, it := range items {
		total += it.DishPrice * float64(it.Quantity)
	}
	return total
}

func Count(items []domain.BasketItem) int {
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// ExpandDishIDs repeats every dish id once per unit ordered.
func ExpandDishIDs(items []domain.BasketItem) []string {
	ids := make([]string, 0, Count(items))
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			ids = append(ids, it.DishID)
		}
	}
	return ids
}
