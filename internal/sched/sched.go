// Package sched abstracts timer ownership so components can arm, repeat,
// and cancel work without touching the runtime clock directly. Components
// hold a Scheduler and a Timer handle; tests swap in the manual-clock Fake.
package sched

import (
	"sync"
	"time"
)

// Timer is a handle to scheduled work. Stop cancels the work; no new
// callback is dispatched after Stop returns. Stop is idempotent.
type Timer interface {
	Stop()
}

// Scheduler arms one-shot and repeating callbacks.
type Scheduler interface {
	// ScheduleOnce runs fn once after d.
	ScheduleOnce(d time.Duration, fn func()) Timer
	// ScheduleRepeating runs fn every d until the returned Timer is stopped.
	ScheduleRepeating(d time.Duration, fn func()) Timer
}

// TimerScheduler is the production Scheduler backed by the runtime clock.
type TimerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.Timer/time.Ticker.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// ScheduleOnce implements Scheduler.
func (s *TimerScheduler) ScheduleOnce(d time.Duration, fn func()) Timer {
	return &onceTimer{t: time.AfterFunc(d, fn)}
}

// ScheduleRepeating implements Scheduler.
func (s *TimerScheduler) ScheduleRepeating(d time.Duration, fn func()) Timer {
	rt := &repeatTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go rt.loop(fn)
	return rt
}

type onceTimer struct {
	t *time.Timer
}

func (o *onceTimer) Stop() {
	o.t.Stop()
}

type repeatTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (r *repeatTimer) loop(fn func()) {
	for {
		select {
		case <-r.done:
			return
		case <-r.ticker.C:
			fn()
		}
	}
}

func (r *repeatTimer) Stop() {
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.done)
	})
}
