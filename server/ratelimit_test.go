package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapLimiter_Disabled(t *testing.T) {
	assert.Nil(t, NewMapLimiter(0, 10, 0))
	assert.Nil(t, NewMapLimiter(5, 0, 0))

	var l *MapLimiter
	assert.True(t, l.Allow("addr-a", time.Now()))
	assert.Equal(t, 0, l.Len())
}

func TestMapLimiter_BurstPerKey(t *testing.T) {
	l := NewMapLimiter(1, 2, time.Minute)
	now := time.Unix(1_700_000_000, 0)

	assert.True(t, l.Allow("addr-a", now))
	assert.True(t, l.Allow("addr-a", now))
	assert.False(t, l.Allow("addr-a", now))
	assert.True(t, l.Allow("addr-b", now))

	// one token refills after a second
	assert.True(t, l.Allow("addr-a", now.Add(time.Second)))
	assert.Equal(t, 2, l.Len())
}

func TestMapLimiter_BlankKeyAllowed(t *testing.T) {
	l := NewMapLimiter(1, 1, time.Minute)
	now := time.Now()

	assert.True(t, l.Allow("  ", now))
	assert.True(t, l.Allow("", now))
	assert.Equal(t, 0, l.Len())
}

func TestMapLimiter_EvictsIdle(t *testing.T) {
	l := NewMapLimiter(100, 100, time.Minute)
	start := time.Unix(1_700_000_000, 0)

	l.Allow("idle", start)
	later := start.Add(2 * time.Minute)
	for i := 0; i < 511; i++ {
		l.Allow("busy", later)
	}

	assert.Equal(t, 1, l.Len())
}
