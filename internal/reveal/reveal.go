// Package reveal dispatches visibility-driven transitions: watched
// elements are tested against the viewport on a rate-limited cadence and
// revealed once (one-shot) or on every re-entry (repeatable). A push
// notification source replaces polling where the platform offers one,
// and a staggered fallback guarantees content never stays hidden.
package reveal

import (
	"sync"
	"time"

	"curbcall/internal/ratelimit"
	"curbcall/internal/sched"
)

// Box is an element's geometry relative to the viewport's top edge.
type Box struct {
	Top    int
	Height int
}

// Viewport describes the visible window for a polling pass.
type Viewport struct {
	Height int
}

// Element is a watched target. Bounds is re-queried on every polling
// pass; Reveal applies the revealed presentation state and is the
// collaborator's concern (style, animation, analytics).
type Element interface {
	Bounds() Box
	Reveal()
}

// Mode selects the per-element trigger discipline.
type Mode int

const (
	// OneShot reveals once and leaves observation.
	OneShot Mode = iota
	// Repeatable re-triggers each time the element re-enters the window.
	Repeatable
)

// Options tunes the visibility predicate for one element.
type Options struct {
	Mode Mode
	// ThresholdPx shrinks the window by a fixed number of rows.
	ThresholdPx int
	// ThresholdFrac shrinks the window by a fraction of the element's
	// height; takes precedence over ThresholdPx when positive.
	ThresholdFrac float64
	// Strict additionally requires the element's top at or below the
	// viewport's top edge (top >= 0).
	Strict bool
}

// Source is a push visibility capability: it delivers at most one
// entered-viewport notification per observed element per session.
type Source interface {
	Observe(el Element, entered func())
	Unobserve(el Element)
}

// Config configures a Dispatcher.
type Config struct {
	// Scheduler backs the rate limiter and the stagger fallback.
	Scheduler sched.Scheduler
	// Interval bounds how often Evaluate performs a full pass. Zero
	// disables rate limiting.
	Interval time.Duration
	// Source, when set, handles one-shot elements by push notification
	// instead of polling.
	Source Source
}

type watch struct {
	el     Element
	opts   Options
	inView bool
}

// Dispatcher owns a set of watched elements. Safe for concurrent use;
// trailing passes and stagger triggers arrive on the scheduler's
// goroutine.
type Dispatcher struct {
	cfg      Config
	throttle *ratelimit.Throttle

	mu       sync.Mutex
	watched  []*watch
	latest   Viewport
	staggers []sched.Timer
	closed   bool
}

// New builds a dispatcher.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{cfg: cfg}
	d.throttle = ratelimit.NewThrottle(cfg.Interval, cfg.Scheduler, d.pass)
	return d
}

// Register adds an element with the given options. One-shot elements are
// additionally observed by the push source when one is configured;
// whichever signal arrives first reveals the element and releases the
// other.
func (d *Dispatcher) Register(el Element, opts Options) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	w := &watch{el: el, opts: opts}
	d.watched = append(d.watched, w)
	src := d.cfg.Source
	d.mu.Unlock()

	if src != nil && opts.Mode == OneShot {
		src.Observe(el, func() { d.entered(el) })
	}
}

// Watched returns the number of elements still under observation.
func (d *Dispatcher) Watched() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.watched)
}

// Evaluate requests a visibility pass against the given viewport. Passes
// are throttled to the configured interval; the most recent viewport is
// always the one evaluated, including by the trailing pass, so the final
// settled state is never dropped.
func (d *Dispatcher) Evaluate(vp Viewport) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.latest = vp
	d.mu.Unlock()

	d.throttle.Call()
}

// pass runs one full visibility sweep over the watched set.
func (d *Dispatcher) pass() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	vp := d.latest
	var fire []Element
	var done []Element // one-shots leaving observation
	kept := d.watched[:0]
	for _, w := range d.watched {
		visible := visibleIn(w.el.Bounds(), vp, w.opts)
		switch w.opts.Mode {
		case OneShot:
			if visible {
				fire = append(fire, w.el)
				done = append(done, w.el)
				continue // revealed; drop from observation
			}
		case Repeatable:
			if visible && !w.inView {
				fire = append(fire, w.el)
			}
			w.inView = visible
		}
		kept = append(kept, w)
	}
	d.watched = kept
	src := d.cfg.Source
	d.mu.Unlock()

	for _, el := range fire {
		el.Reveal()
	}
	if src != nil {
		for _, el := range done {
			src.Unobserve(el)
		}
	}
}

// visibleIn applies the visibility predicate.
func visibleIn(b Box, vp Viewport, opts Options) bool {
	threshold := opts.ThresholdPx
	if opts.ThresholdFrac > 0 {
		threshold = int(opts.ThresholdFrac * float64(b.Height))
	}
	if b.Top >= vp.Height-threshold {
		return false
	}
	if opts.Strict && b.Top < 0 {
		return false
	}
	return true
}

// entered handles a push notification for el: reveal, cease observation.
func (d *Dispatcher) entered(el Element) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	found := false
	kept := d.watched[:0]
	for _, w := range d.watched {
		if w.el == el {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	d.watched = kept
	src := d.cfg.Source
	d.mu.Unlock()

	if !found {
		return // duplicate or post-teardown notification
	}
	el.Reveal()
	if src != nil {
		src.Unobserve(el)
	}
}

// StaggerAll is the degraded path for hosts with no usable visibility
// signal: every watched element is revealed unconditionally on a fixed
// cadence (delay × registration index), so nothing stays hidden.
func (d *Dispatcher) StaggerAll(delay time.Duration) {
	d.mu.Lock()
	if d.closed || d.cfg.Scheduler == nil {
		d.mu.Unlock()
		return
	}
	targets := make([]Element, len(d.watched))
	for i, w := range d.watched {
		targets[i] = w.el
	}
	d.watched = nil
	for i, el := range targets {
		el := el
		t := d.cfg.Scheduler.ScheduleOnce(delay*time.Duration(i), func() { d.staggerFire(el) })
		d.staggers = append(d.staggers, t)
	}
	src := d.cfg.Source
	d.mu.Unlock()

	if src != nil {
		for _, el := range targets {
			src.Unobserve(el)
		}
	}
}

// staggerFire reveals one stagger target unless the dispatcher was torn
// down after the timer was armed.
func (d *Dispatcher) staggerFire(el Element) {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return
	}
	el.Reveal()
}

// Close tears the dispatcher down: pending trailing and stagger timers
// are canceled and push subscriptions released. No reveal fires after
// Close returns.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	timers := d.staggers
	d.staggers = nil
	watched := d.watched
	d.watched = nil
	src := d.cfg.Source
	d.mu.Unlock()

	d.throttle.Stop()
	for _, t := range timers {
		t.Stop()
	}
	if src != nil {
		for _, w := range watched {
			src.Unobserve(w.el)
		}
	}
}
