package core

import "time"

// FixedStep reports when a fixed interval has elapsed, carrying over any
// remainder so a slow caller does not drift.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing once per interval. Non-positive
// intervals fall back to one second.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the firing interval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	f.step = interval
}

// Interval returns the configured interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart forgets elapsed time so the next firing is a full interval away.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether an interval has elapsed as of now.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
