// Package clock converts variable frame deltas into a fixed sequence of logic ticks.
package clock

import "time"

// Clock accumulates frame time and releases it in fixed steps.
// It is not safe for concurrent use.
type Clock struct {
	step        time.Duration
	maxFrame    time.Duration
	accumulator time.Duration
	ticks       uint64
}

// New returns a clock emitting one tick per step. maxFrame caps the delta
// accepted by a single Accumulate call; zero disables the cap.
func New(step, maxFrame time.Duration) *Clock {
	if step <= 0 {
		panic("clock: step must be positive")
	}
	return &Clock{step: step, maxFrame: maxFrame}
}

// Accumulate adds one frame's elapsed time. Negative deltas are ignored.
func (c *Clock) Accumulate(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if c.maxFrame > 0 && dt > c.maxFrame {
		dt = c.maxFrame
	}
	c.accumulator += dt
}

// Next consumes one step if enough time has accumulated.
//
//	clk.Accumulate(dt)
//	for clk.Next() {
//		sim.Tick()
//	}
func (c *Clock) Next() bool {
	if c.accumulator < c.step {
		return false
	}
	c.accumulator -= c.step
	c.ticks++
	return true
}

// Remainder returns accumulated time not yet consumed by a tick.
func (c *Clock) Remainder() time.Duration { return c.accumulator }

// Ticks returns the number of ticks emitted since creation or Reset.
func (c *Clock) Ticks() uint64 { return c.ticks }

// SetMaxFrame changes the per-frame cap; zero disables it.
func (c *Clock) SetMaxFrame(d time.Duration) { c.maxFrame = d }

// Reset drops pending time and the tick count.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.ticks = 0
}
