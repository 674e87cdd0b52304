package clock

import "time"

// Frame is a scheduler for frame-driven loops. The loop calls Advance once
// per frame with the frame time and runs a tick when it returns true.
type Frame struct {
	interval time.Duration
	elapsed  time.Duration
	armed    bool
}

// Arm starts counting a fresh interval.
func (f *Frame) Arm(interval time.Duration) {
	f.interval = interval
	f.elapsed = 0
	f.armed = true
}

// Stop disarms the scheduler.
func (f *Frame) Stop() {
	f.armed = false
	f.elapsed = 0
}

// Armed reports whether ticks are scheduled.
func (f *Frame) Armed() bool {
	return f.armed
}

// Advance adds dt to the elapsed time and reports whether a tick is due.
// At most one tick fires per frame; time owed beyond one extra interval is
// dropped so a long stall does not replay a burst of moves.
func (f *Frame) Advance(dt time.Duration) bool {
	if !f.armed || f.interval <= 0 {
		return false
	}
	f.elapsed += dt
	if f.elapsed < f.interval {
		return false
	}
	f.elapsed -= f.interval
	if f.elapsed >= f.interval {
		f.elapsed = 0
	}
	return true
}
