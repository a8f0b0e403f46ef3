package registration

import (
	"math"
	"time"
)

// Countdown is the resend timer shown next to the OTP field.
type Countdown struct {
	remaining int
}

func NewCountdown(seconds int) Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return Countdown{remaining: seconds}
}

// CountdownUntil rounds the time left until at up to whole seconds.
func CountdownUntil(now, at time.Time) Countdown {
	left := at.Sub(now)
	if left <= 0 {
		return Countdown{}
	}
	return NewCountdown(int(math.Ceil(left.Seconds())))
}

func (c Countdown) Remaining() int {
	return c.remaining
}

// Tick moves one second down, never below zero.
func (c *Countdown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}

func (c Countdown) CanResend() bool {
	return c.remaining == 0
}
