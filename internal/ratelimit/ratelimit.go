// Package ratelimit bounds how often high-frequency input triggers real
// work. Throttle runs at most once per interval during a burst (leading
// edge plus a trailing call so the final event is never dropped);
// Debounce coalesces a burst into one call after input quiesces.
package ratelimit

import (
	"sync"
	"time"

	"curbcall/internal/sched"
)

// Throttle invokes fn on the leading edge of a burst, then at most once
// per interval. Calls arriving inside the window are coalesced into a
// single trailing invocation when the window closes.
type Throttle struct {
	interval time.Duration
	sched    sched.Scheduler
	fn       func()

	mu       sync.Mutex
	cooldown bool
	trailing bool
	timer    sched.Timer
	stopped  bool
}

// NewThrottle wraps fn with the throttle discipline. An interval of zero
// disables throttling; every Call runs fn.
func NewThrottle(interval time.Duration, s sched.Scheduler, fn func()) *Throttle {
	return &Throttle{interval: interval, sched: s, fn: fn}
}

// Call requests an invocation of fn. The leading call runs synchronously
// on the caller's goroutine; a coalesced trailing call runs on the
// scheduler's goroutine.
func (t *Throttle) Call() {
	if t.interval <= 0 {
		t.fn()
		return
	}

	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.cooldown {
		t.trailing = true
		t.mu.Unlock()
		return
	}
	t.cooldown = true
	t.timer = t.sched.ScheduleOnce(t.interval, t.windowClosed)
	t.mu.Unlock()

	t.fn()
}

// windowClosed runs when the cooldown window elapses. If calls were
// coalesced it fires the trailing invocation and opens a fresh window.
func (t *Throttle) windowClosed() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if !t.trailing {
		t.cooldown = false
		t.timer = nil
		t.mu.Unlock()
		return
	}
	t.trailing = false
	t.timer = t.sched.ScheduleOnce(t.interval, t.windowClosed)
	t.mu.Unlock()

	t.fn()
}

// Stop cancels any pending trailing call. Subsequent Calls are ignored.
func (t *Throttle) Stop() {
	t.mu.Lock()
	t.stopped = true
	timer := t.timer
	t.timer = nil
	t.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
}

// Debounce invokes fn once after Calls have quiesced for the interval.
// Every Call resets the countdown; bursts collapse to one trailing call.
type Debounce struct {
	interval time.Duration
	sched    sched.Scheduler
	fn       func()

	mu      sync.Mutex
	timer   sched.Timer
	stopped bool
}

// NewDebounce wraps fn with the debounce discipline.
func NewDebounce(interval time.Duration, s sched.Scheduler, fn func()) *Debounce {
	return &Debounce{interval: interval, sched: s, fn: fn}
}

// Call restarts the quiescence countdown.
func (d *Debounce) Call() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.sched.ScheduleOnce(d.interval, d.fire)
	d.mu.Unlock()
}

func (d *Debounce) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

// Stop cancels any pending invocation. Subsequent Calls are ignored.
func (d *Debounce) Stop() {
	d.mu.Lock()
	d.stopped = true
	timer := d.timer
	d.timer = nil
	d.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
}
