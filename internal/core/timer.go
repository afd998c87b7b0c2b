package core

import "time"

// FixedStep paces simulation generations at a wall-clock rate. It accumulates
// frame deltas and fires once the accumulator reaches one generation period;
// surplus drift is dropped rather than caught up, so at most one generation
// fires per poll.
type FixedStep struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given generations per
// second.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the generations-per-second rate. It is safe to call from
// the main loop; the running accumulator is kept.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 1
	}
	f.period = time.Duration(float64(time.Second) / rate)
}

// ShouldStep reports whether one generation should fire now. When it fires
// the accumulator resets to zero.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.period {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset drops any accumulated time, delaying the next generation by a full
// period.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
