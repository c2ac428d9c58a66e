package service

import (
	"errors"
	"sync"
)

type ToggleField string

const (
	TogglePublished ToggleField = "published"
	ToggleStock     ToggleField = "stock"
)

var ErrTogglePending = errors.New("a change for this dish is already in flight")

type toggleKey struct {
	id    string
	field ToggleField
}

type toggle struct {
	confirmed bool
	known     bool
	tentative bool
	pending   bool
}

// ToggleSet holds optimistic switch values. Begin records a tentative value,
// Commit makes it the confirmed one, Rollback returns to the last confirmed
// value. Observe reconciles with what the server reports.
type ToggleSet struct {
	mu      sync.Mutex
	toggles map[toggleKey]*toggle
}

func NewToggleSet() *ToggleSet {
	return &ToggleSet{toggles: make(map[toggleKey]*toggle)}
}

func (t *ToggleSet) get(id string, field ToggleField) *toggle {
	k := toggleKey{id: id, field: field}
	tg, ok := t.toggles[k]
	if !ok {
		tg = &toggle{}
		t.toggles[k] = tg
	}
	return tg
}

// Observe records a server value. It is ignored while a change is pending.
func (t *ToggleSet) Observe(id string, field ToggleField, value bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tg := t.get(id, field)
	if tg.pending {
		return
	}
	tg.confirmed = value
	tg.known = true
}

func (t *ToggleSet) Begin(id string, field ToggleField, value bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tg := t.get(id, field)
	if tg.pending {
		return ErrTogglePending
	}
	tg.tentative = value
	tg.pending = true
	return nil
}

func (t *ToggleSet) Commit(id string, field ToggleField) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tg := t.get(id, field)
	if !tg.pending {
		return
	}
	tg.confirmed = tg.tentative
	tg.known = true
	tg.pending = false
}

func (t *ToggleSet) Rollback(id string, field ToggleField) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.get(id, field).pending = false
}

// Value is the tentative value while pending, else the last confirmed value,
// else fallback.
func (t *ToggleSet) Value(id string, field ToggleField, fallback bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	tg, ok := t.toggles[toggleKey{id: id, field: field}]
	switch {
	case !ok:
		return fallback
	case tg.pending:
		return tg.tentative
	case tg.known:
		return tg.confirmed
	default:
		return fallback
	}
}

func (t *ToggleSet) Pending(id string, field ToggleField) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	tg, ok := t.toggles[toggleKey{id: id, field: field}]
	return ok && tg.pending
}
