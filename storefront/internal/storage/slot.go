package storage

import (
	"context"
	"errors"
	"sync"
)

// Well-known slot keys.
const (
	KeyAccessToken = "access_token"
	KeyUserID      = "user_id"
	KeyUsername    = "username"
	KeyBasket      = "basket"
)

var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a scoped key-value persistence area. Get returns ErrSlotEmpty for
// absent keys.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type MemorySlot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string][]byte{}}
}

func (s *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), v...), nil
}

func (s *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemorySlot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var (
	_ Slot = (*MemorySlot)(nil)
	_ Slot = (*FileSlot)(nil)
	_ Slot = (*RedisSlot)(nil)
	_ Slot = (*PostgresSlot)(nil)
)
