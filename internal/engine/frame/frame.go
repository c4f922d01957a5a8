// Package frame paces the render loop to a fixed target frame time.
package frame

import "time"

// Clock abstracts wall-clock time so pacing can run against a fake in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// TargetForFPS returns the frame budget for fps frames per second.
func TargetForFPS(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Timing describes one finished frame.
type Timing struct {
	Work     time.Duration // frame start to end of work
	Slept    time.Duration // remainder slept to reach the target
	Duration time.Duration // frame start to the start of the next frame
}

// Pacer measures frames and sleeps away the unused part of the budget.
// Slow frames are never compensated by shorter sleeps later.
type Pacer struct {
	clock  Clock
	target time.Duration
	start  time.Time
	last   time.Duration
}

// NewPacer creates a pacer and starts the first frame. A zero target
// disables sleeping.
func NewPacer(clock Clock, target time.Duration) *Pacer {
	return &Pacer{
		clock:  clock,
		target: target,
		start:  clock.Now(),
		last:   target,
	}
}

// Target returns the frame budget.
func (p *Pacer) Target() time.Duration {
	return p.target
}

// Last returns the full duration of the previous frame. Before any frame has
// finished it returns the target.
func (p *Pacer) Last() time.Duration {
	return p.last
}

// End finishes the current frame: it measures the work, sleeps the remainder
// of the budget, and starts the next frame.
func (p *Pacer) End() Timing {
	end := p.clock.Now()
	work := end.Sub(p.start)

	var slept time.Duration
	if work < p.target {
		slept = p.target - work
		p.clock.Sleep(slept)
		end = p.clock.Now()
	}

	t := Timing{
		Work:     work,
		Slept:    slept,
		Duration: end.Sub(p.start),
	}
	p.start = end
	p.last = t.Duration
	return t
}
