package sched

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manual-clock Scheduler for tests. Nothing fires until Advance
// moves the clock; callbacks run on the caller's goroutine in deadline
// order, so tests are deterministic without sleeping.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	entries []*fakeEntry
}

type fakeEntry struct {
	id       int
	deadline time.Time
	period   time.Duration // 0 for one-shot
	fn       func()
	stopped  bool
	owner    *Fake
}

// NewFake returns a Fake with the clock at an arbitrary fixed origin.
func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0)}
}

// ScheduleOnce implements Scheduler.
func (f *Fake) ScheduleOnce(d time.Duration, fn func()) Timer {
	return f.add(d, 0, fn)
}

// ScheduleRepeating implements Scheduler.
func (f *Fake) ScheduleRepeating(d time.Duration, fn func()) Timer {
	return f.add(d, d, fn)
}

func (f *Fake) add(d, period time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e := &fakeEntry{
		id:       f.nextID,
		deadline: f.now.Add(d),
		period:   period,
		fn:       fn,
		owner:    f,
	}
	f.entries = append(f.entries, e)
	return e
}

// Now returns the fake clock's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending returns the number of armed timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.entries {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in deadline
// order (insertion order breaks ties). Repeating timers re-arm until
// stopped. Callbacks run with the scheduler unlocked, so they may arm or
// stop timers.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)
	for {
		e := f.nextDue(target)
		if e == nil {
			break
		}
		f.now = e.deadline
		if e.period > 0 {
			e.deadline = e.deadline.Add(e.period)
		} else {
			e.stopped = true
		}
		fn := e.fn
		f.mu.Unlock()
		fn()
		f.mu.Lock()
	}
	f.now = target
	f.compact()
	f.mu.Unlock()
}

// nextDue returns the earliest unstopped entry with deadline <= target.
// Caller holds the lock.
func (f *Fake) nextDue(target time.Time) *fakeEntry {
	var due []*fakeEntry
	for _, e := range f.entries {
		if !e.stopped && !e.deadline.After(target) {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].id < due[j].id
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	return due[0]
}

// compact drops stopped entries. Caller holds the lock.
func (f *Fake) compact() {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if !e.stopped {
			kept = append(kept, e)
		}
	}
	f.entries = kept
}

// Stop implements Timer.
func (e *fakeEntry) Stop() {
	e.owner.mu.Lock()
	e.stopped = true
	e.owner.mu.Unlock()
}
