package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleSet(t *testing.T) {
	toggles := NewToggleSet()

	assert.True(t, toggles.Value("r1/d1", ToggleStock, true), "unknown toggles use the fallback")

	toggles.Observe("r1/d1", ToggleStock, true)
	assert.NoError(t, toggles.Begin("r1/d1", ToggleStock, false))
	assert.False(t, toggles.Value("r1/d1", ToggleStock, true))
	assert.ErrorIs(t, toggles.Begin("r1/d1", ToggleStock, true), ErrTogglePending)

	// server data arriving mid-flight does not clobber the tentative value
	toggles.Observe("r1/d1", ToggleStock, true)
	assert.False(t, toggles.Value("r1/d1", ToggleStock, true))

	toggles.Rollback("r1/d1", ToggleStock)
	assert.True(t, toggles.Value("r1/d1", ToggleStock, false))
	assert.False(t, toggles.Pending("r1/d1", ToggleStock))

	assert.NoError(t, toggles.Begin("r1/d1", ToggleStock, false))
	toggles.Commit("r1/d1", ToggleStock)
	assert.False(t, toggles.Value("r1/d1", ToggleStock, true))
}

func TestToggleSet_FieldsAndDishesAreIndependent(t *testing.T) {
	toggles := NewToggleSet()

	assert.NoError(t, toggles.Begin("r1/d1", TogglePublished, true))
	assert.NoError(t, toggles.Begin("r1/d1", ToggleStock, false))
	assert.NoError(t, toggles.Begin("r2/d1", TogglePublished, false))

	assert.True(t, toggles.Pending("r1/d1", TogglePublished))
	assert.True(t, toggles.Pending("r2/d1", TogglePublished))
	assert.False(t, toggles.Pending("r1/d2", TogglePublished))
}
