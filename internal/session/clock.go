package session

import (
	"sync"
	"time"
)

// Clock is a PositionSource driven by wall time, standing in for a video
// player. It can be paused and seeked.
type Clock struct {
	mu     sync.Mutex
	now    func() time.Time
	origin time.Time
	offset float64
	paused bool
}

// NewClock returns a running clock positioned at start seconds.
func NewClock(start float64) *Clock {
	c := &Clock{now: time.Now}
	c.origin = c.now()
	c.offset = clampPosition(start)
	return c
}

func (c *Clock) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

// SeekTo moves the clock to seconds, clamped at zero.
func (c *Clock) SeekTo(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.origin = c.now()
	c.offset = clampPosition(seconds)
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.offset = c.positionLocked()
	c.paused = true
}

func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.origin = c.now()
	c.paused = false
}

func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Clock) positionLocked() float64 {
	if c.paused {
		return c.offset
	}
	return c.offset + c.now().Sub(c.origin).Seconds()
}

// Nudge returns current shifted by delta, clamped at zero.
func Nudge(current, delta float64) float64 {
	return clampPosition(current + delta)
}

func clampPosition(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}
