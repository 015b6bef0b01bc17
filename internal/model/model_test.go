package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caladd/internal/resolve"
)

func TestNewEvent(t *testing.T) {
	r, err := resolve.Resolve("2025-01-01", "", "")
	require.NoError(t, err)

	a := NewEvent("New year", r)
	b := NewEvent("New year", r)

	_, err = uuid.Parse(a.UID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.UID, b.UID)
	assert.Equal(t, "New year", a.Title)
	assert.Equal(t, r, a.Range)
	assert.False(t, a.Created.IsZero())
}
