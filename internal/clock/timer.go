// Package clock provides tick schedulers for frontends that do not have a
// tick primitive of their own.
package clock

import (
	"sync"
	"time"
)

// Tick is delivered on Timer.C each time the interval elapses.
type Tick struct {
	Gen uint64
	At  time.Time
}

// Timer is a periodic wall-clock scheduler. Arm cancels the running timer
// before starting a new one, and every arm gets a new generation, so ticks
// queued by an earlier arm can be recognised with Live and dropped.
//
// Timer fires on its own goroutine; consumers read C from their event loop.
type Timer struct {
	mu       sync.Mutex
	gen      uint64
	interval time.Duration
	timer    *time.Timer
	c        chan Tick
}

// NewTimer creates a stopped timer.
func NewTimer() *Timer {
	return &Timer{c: make(chan Tick, 1)}
}

// C returns the tick channel. A tick is dropped if the previous one has not
// been read yet.
func (t *Timer) C() <-chan Tick {
	return t.c
}

// Arm starts ticking every interval, replacing any previous schedule.
func (t *Timer) Arm(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.interval = interval
	t.scheduleLocked(t.gen)
}

// Stop cancels the schedule. Ticks already queued fail Live.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Live reports whether tick belongs to the current schedule.
func (t *Timer) Live(tick Tick) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil && tick.Gen == t.gen
}

// Interval returns the armed interval.
func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

func (t *Timer) stopLocked() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Timer) scheduleLocked(gen uint64) {
	t.timer = time.AfterFunc(t.interval, func() { t.fire(gen) })
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-armed or stopped while this callback was waiting for the lock
	if gen != t.gen || t.timer == nil {
		return
	}

	select {
	case t.c <- Tick{Gen: gen, At: time.Now()}:
	default:
	}
	t.scheduleLocked(gen)
}
