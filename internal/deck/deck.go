// Package deck implements a cyclic slide deck: an ordered, fixed set of
// slides, a current-index cursor, and a scheduler-owned autoplay timer.
// The deck computes presentation state (offset, indicator dots); drawing
// is the host's concern via the OnChange hook.
package deck

import (
	"sync"
	"time"

	"curbcall/internal/sched"
)

// DefaultAutoplayPeriod is the advancement interval when none is configured.
const DefaultAutoplayPeriod = 5 * time.Second

// DefaultSwipeThreshold is the minimum horizontal travel, in cells, for a
// drag to count as a swipe rather than a tap.
const DefaultSwipeThreshold = 50

// Frame is the deck's presentation state after an index change.
type Frame struct {
	Index int
	Count int
	// OffsetPercent is the horizontal track offset, -Index*100.
	OffsetPercent int
	// Indicators has one entry per slide; exactly one is true when Count > 0.
	Indicators []bool
}

// Options configures a Deck.
type Options struct {
	// AutoplayPeriod defaults to DefaultAutoplayPeriod when zero.
	AutoplayPeriod time.Duration
	// SwipeThreshold defaults to DefaultSwipeThreshold when zero.
	SwipeThreshold int
	// Scheduler owns the autoplay timer. Required for autoplay; a deck
	// without one simply never advances on its own.
	Scheduler sched.Scheduler
	// OnChange is invoked after every index change with the new frame.
	// It runs on whichever goroutine caused the change (the caller's, or
	// the scheduler's for autoplay ticks).
	OnChange func(Frame)
}

// Deck cycles through a fixed ordered set of slides. All methods are
// safe for concurrent use; autoplay ticks arrive on the scheduler's
// goroutine.
type Deck[S any] struct {
	mu       sync.Mutex
	slides   []S
	index    int
	period   time.Duration
	swipe    int
	sch      sched.Scheduler
	onChange func(Frame)
	autoplay sched.Timer
	closed   bool
}

// New builds a deck over the given slides. The slide set is fixed for
// the deck's lifetime; an empty set yields a deck whose navigation
// operations are all no-ops.
func New[S any](slides []S, opts Options) *Deck[S] {
	period := opts.AutoplayPeriod
	if period <= 0 {
		period = DefaultAutoplayPeriod
	}
	swipe := opts.SwipeThreshold
	if swipe <= 0 {
		swipe = DefaultSwipeThreshold
	}
	return &Deck[S]{
		slides:   slides,
		period:   period,
		swipe:    swipe,
		sch:      opts.Scheduler,
		onChange: opts.OnChange,
	}
}

// Len returns the number of slides.
func (d *Deck[S]) Len() int {
	return len(d.slides)
}

// Index returns the current slide index, 0 when the deck is empty.
func (d *Deck[S]) Index() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index
}

// Current returns the active slide, or false when the deck is empty.
func (d *Deck[S]) Current() (S, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.slides) == 0 {
		var zero S
		return zero, false
	}
	return d.slides[d.index], true
}

// Slides returns the full slide sequence.
func (d *Deck[S]) Slides() []S {
	return d.slides
}

// Frame returns the current presentation state.
func (d *Deck[S]) Frame() Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frameLocked()
}

// frameLocked builds the render state. Caller holds the lock.
func (d *Deck[S]) frameLocked() Frame {
	dots := make([]bool, len(d.slides))
	if len(d.slides) > 0 {
		dots[d.index] = true
	}
	return Frame{
		Index:         d.index,
		Count:         len(d.slides),
		OffsetPercent: -d.index * 100,
		Indicators:    dots,
	}
}

// GoTo jumps to the given index, normalized by modulo so any integer —
// negative included — lands on a valid slide. No-op on an empty deck.
// Does not restart autoplay.
func (d *Deck[S]) GoTo(i int) {
	d.setIndex(func(n int) int { return ((i % n) + n) % n })
}

// Next advances with wraparound.
func (d *Deck[S]) Next() {
	d.setIndex(func(n int) int { return (d.index + 1) % n })
}

// Previous retreats with wraparound.
func (d *Deck[S]) Previous() {
	d.setIndex(func(n int) int { return (d.index - 1 + n) % n })
}

// setIndex applies the index transform when the deck is non-empty and
// fires OnChange outside the lock.
func (d *Deck[S]) setIndex(next func(n int) int) {
	d.mu.Lock()
	n := len(d.slides)
	if n == 0 || d.closed {
		d.mu.Unlock()
		return
	}
	d.index = next(n)
	frame := d.frameLocked()
	hook := d.onChange
	d.mu.Unlock()

	if hook != nil {
		hook(frame)
	}
}

// HandleSwipe interprets a horizontal drag from startX to endX. Travel
// beyond the threshold navigates: leftward (positive diff) advances,
// rightward retreats. Anything shorter is a tap and is ignored.
func (d *Deck[S]) HandleSwipe(startX, endX int) {
	diff := startX - endX
	switch {
	case diff > d.swipe:
		d.Next()
	case diff < -d.swipe:
		d.Previous()
	}
}

// StartAutoplay arms the repeating advancement timer. Any prior timer is
// canceled first, so calling twice leaves exactly one timer armed. No-op
// without a scheduler or on an empty deck.
func (d *Deck[S]) StartAutoplay() {
	d.mu.Lock()
	if d.sch == nil || len(d.slides) == 0 || d.closed {
		d.mu.Unlock()
		return
	}
	prior := d.autoplay
	d.autoplay = d.sch.ScheduleRepeating(d.period, d.Next)
	d.mu.Unlock()

	if prior != nil {
		prior.Stop()
	}
}

// StopAutoplay cancels the advancement timer; no-op when not armed.
func (d *Deck[S]) StopAutoplay() {
	d.mu.Lock()
	timer := d.autoplay
	d.autoplay = nil
	d.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
}

// AutoplayActive reports whether the advancement timer is armed.
func (d *Deck[S]) AutoplayActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.autoplay != nil
}

// Close stops autoplay and rejects further navigation. A tick already in
// flight when Close returns finds the deck closed and does nothing.
func (d *Deck[S]) Close() {
	d.mu.Lock()
	d.closed = true
	timer := d.autoplay
	d.autoplay = nil
	d.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
}
