package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_TickFloorsAtZero(t *testing.T) {
	c := NewCountdown(2)
	assert.False(t, c.CanResend())

	c.Tick()
	assert.Equal(t, 1, c.Remaining())
	assert.False(t, c.CanResend())

	c.Tick()
	c.Tick()
	assert.Equal(t, 0, c.Remaining())
	assert.True(t, c.CanResend())
}

func TestCountdownUntil_RoundsUp(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, CountdownUntil(now, now.Add(29500*time.Millisecond)).Remaining())
	assert.Equal(t, 0, CountdownUntil(now, now.Add(-time.Second)).Remaining())
	assert.True(t, CountdownUntil(now, now).CanResend())
}

func TestNewCountdown_NegativeIsZero(t *testing.T) {
	assert.True(t, NewCountdown(-5).CanResend())
}
