package deck

import (
	"math/rand"
	"testing"
	"time"

	"curbcall/internal/sched"

	"github.com/stretchr/testify/assert"
)

func newTestDeck(n int, f *sched.Fake) *Deck[int] {
	slides := make([]int, n)
	for i := range slides {
		slides[i] = i
	}
	return New(slides, Options{Scheduler: f})
}

func TestDeck_NextPreviousStayInRange(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		d := newTestDeck(n, nil)
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			if rng.Intn(2) == 0 {
				d.Next()
			} else {
				d.Previous()
			}
			if idx := d.Index(); idx < 0 || idx >= n {
				t.Fatalf("n=%d: index %d out of range after %d ops", n, idx, i+1)
			}
		}
	}
}

func TestDeck_NextWrapsAround(t *testing.T) {
	d := newTestDeck(3, nil)
	d.Next()
	d.Next()
	assert.Equal(t, 2, d.Index())
	d.Next()
	assert.Equal(t, 0, d.Index(), "next at last slide wraps to first")
}

func TestDeck_PreviousWrapsAround(t *testing.T) {
	d := newTestDeck(3, nil)
	d.Previous()
	assert.Equal(t, 2, d.Index(), "previous at first slide wraps to last")
}

func TestDeck_GoToNormalizesAnyInteger(t *testing.T) {
	d := newTestDeck(4, nil)
	cases := []struct {
		in   int
		want int
	}{
		{0, 0}, {3, 3}, {4, 0}, {5, 1}, {9, 1},
		{-1, 3}, {-4, 0}, {-5, 3}, {-13, 3},
	}
	for _, c := range cases {
		d.GoTo(c.in)
		assert.Equalf(t, c.want, d.Index(), "GoTo(%d)", c.in)
	}
}

func TestDeck_EmptyDeckNavigationNoOps(t *testing.T) {
	f := sched.NewFake()
	d := newTestDeck(0, f)
	d.Next()
	d.Previous()
	d.GoTo(7)
	d.GoTo(-3)
	assert.Equal(t, 0, d.Index())

	_, ok := d.Current()
	assert.False(t, ok)

	d.StartAutoplay()
	assert.False(t, d.AutoplayActive(), "autoplay must not arm on an empty deck")
	assert.Equal(t, 0, f.Pending())
}

func TestDeck_SwipeThreshold(t *testing.T) {
	d := newTestDeck(5, nil)

	// diff = 60 > 50: one next().
	d.HandleSwipe(100, 40)
	assert.Equal(t, 1, d.Index())

	// diff = -60: one previous().
	d.HandleSwipe(40, 100)
	assert.Equal(t, 0, d.Index())

	// diff = 20 < threshold: tap, no navigation.
	d.HandleSwipe(100, 80)
	assert.Equal(t, 0, d.Index())

	// Exactly at threshold is still a tap.
	d.HandleSwipe(50, 0)
	assert.Equal(t, 0, d.Index())
}

func TestDeck_AutoplayAdvancesEachPeriod(t *testing.T) {
	f := sched.NewFake()
	slides := []int{0, 1, 2}
	d := New(slides, Options{Scheduler: f, AutoplayPeriod: time.Second})

	d.StartAutoplay()
	f.Advance(time.Second)
	assert.Equal(t, 1, d.Index())
	f.Advance(2 * time.Second)
	assert.Equal(t, 0, d.Index(), "autoplay wraps around")
}

func TestDeck_StartAutoplayTwiceLeavesOneTimer(t *testing.T) {
	f := sched.NewFake()
	d := New([]int{0, 1, 2, 3}, Options{Scheduler: f, AutoplayPeriod: time.Second})

	d.StartAutoplay()
	d.StartAutoplay()
	assert.Equal(t, 1, f.Pending(), "second StartAutoplay must cancel the first timer")

	// One advancement per period, not two.
	f.Advance(time.Second)
	assert.Equal(t, 1, d.Index())
	f.Advance(time.Second)
	assert.Equal(t, 2, d.Index())
}

func TestDeck_StopAutoplayHaltsAdvancement(t *testing.T) {
	f := sched.NewFake()
	d := New([]int{0, 1, 2}, Options{Scheduler: f, AutoplayPeriod: time.Second})

	d.StartAutoplay()
	f.Advance(time.Second)
	assert.Equal(t, 1, d.Index())

	d.StopAutoplay()
	f.Advance(10 * time.Second)
	assert.Equal(t, 1, d.Index(), "no advancement after StopAutoplay")

	// Stop when not armed is a no-op.
	d.StopAutoplay()
}

func TestDeck_FrameOffsetAndIndicators(t *testing.T) {
	d := newTestDeck(3, nil)
	d.GoTo(2)

	frame := d.Frame()
	assert.Equal(t, 2, frame.Index)
	assert.Equal(t, -200, frame.OffsetPercent)
	assert.Equal(t, []bool{false, false, true}, frame.Indicators)
}

func TestDeck_OnChangeFiresPerNavigation(t *testing.T) {
	var frames []Frame
	d := New([]int{0, 1, 2}, Options{OnChange: func(fr Frame) { frames = append(frames, fr) }})

	d.Next()
	d.GoTo(0)
	d.Previous()
	assert.Len(t, frames, 3)
	assert.Equal(t, 1, frames[0].Index)
	assert.Equal(t, 0, frames[1].Index)
	assert.Equal(t, 2, frames[2].Index)
}

func TestDeck_CloseCancelsAutoplay(t *testing.T) {
	f := sched.NewFake()
	d := New([]int{0, 1}, Options{Scheduler: f, AutoplayPeriod: time.Second})
	d.StartAutoplay()
	d.Close()
	assert.Equal(t, 0, f.Pending())

	f.Advance(time.Minute)
	assert.Equal(t, 0, d.Index())

	// Navigation after Close is rejected.
	d.Next()
	assert.Equal(t, 0, d.Index())
	d.StartAutoplay()
	assert.False(t, d.AutoplayActive())
}
