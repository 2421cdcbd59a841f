package core

import "time"

// FrameClock measures the wall-clock time between successive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock returns a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewFrameClockWithSource returns a clock reading time from now, which lets
// headless runs and tests drive frames deterministically.
func NewFrameClockWithSource(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Delta returns the milliseconds elapsed since the previous call. The first
// call, and any call after Reset, returns 0.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return float64(delta) / float64(time.Millisecond)
}

// Reset forgets the previous frame so the next Delta starts from zero.
// Call it after a pause so the paused interval is not simulated.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
