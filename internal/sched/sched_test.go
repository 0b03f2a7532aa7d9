package sched

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// TestMain verifies no timer goroutines leak across the package's tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFake_ScheduleOnceFiresAtDeadline(t *testing.T) {
	f := NewFake()
	fired := 0
	f.ScheduleOnce(100*time.Millisecond, func() { fired++ })

	f.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired before deadline: %d", fired)
	}
	f.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 fire at deadline, got %d", fired)
	}
	f.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("one-shot fired again: %d", fired)
	}
}

func TestFake_ScheduleRepeatingReArms(t *testing.T) {
	f := NewFake()
	fired := 0
	tm := f.ScheduleRepeating(50*time.Millisecond, func() { fired++ })

	f.Advance(175 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("expected 3 fires in 175ms at 50ms period, got %d", fired)
	}

	tm.Stop()
	f.Advance(time.Second)
	if fired != 3 {
		t.Fatalf("fired after Stop: %d", fired)
	}
}

func TestFake_StopBeforeDeadline(t *testing.T) {
	f := NewFake()
	fired := 0
	tm := f.ScheduleOnce(10*time.Millisecond, func() { fired++ })
	tm.Stop()
	f.Advance(time.Second)
	if fired != 0 {
		t.Errorf("stopped timer fired %d times", fired)
	}
	if f.Pending() != 0 {
		t.Errorf("expected 0 pending after stop, got %d", f.Pending())
	}
}

func TestFake_DeadlineOrder(t *testing.T) {
	f := NewFake()
	var order []string
	f.ScheduleOnce(30*time.Millisecond, func() { order = append(order, "c") })
	f.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "a") })
	f.ScheduleOnce(20*time.Millisecond, func() { order = append(order, "b") })

	f.Advance(time.Second)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expected [a b c], got %v", order)
	}
}

func TestFake_CallbackMayArmTimer(t *testing.T) {
	f := NewFake()
	fired := 0
	f.ScheduleOnce(10*time.Millisecond, func() {
		f.ScheduleOnce(10*time.Millisecond, func() { fired++ })
	})
	f.Advance(20 * time.Millisecond)
	if fired != 1 {
		t.Errorf("chained timer did not fire, got %d", fired)
	}
}

func TestTimerScheduler_Once(t *testing.T) {
	s := NewTimerScheduler()
	done := make(chan struct{})
	s.ScheduleOnce(5*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot timer never fired")
	}
}

func TestTimerScheduler_OnceStop(t *testing.T) {
	s := NewTimerScheduler()
	var fired atomic.Int32
	tm := s.ScheduleOnce(50*time.Millisecond, func() { fired.Add(1) })
	tm.Stop()
	time.Sleep(150 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("stopped timer fired %d times", n)
	}
}

func TestTimerScheduler_RepeatingStop(t *testing.T) {
	s := NewTimerScheduler()
	var mu sync.Mutex
	fired := 0
	tm := s.ScheduleRepeating(10*time.Millisecond, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)
	tm.Stop()
	tm.Stop() // idempotent

	mu.Lock()
	atStop := fired
	mu.Unlock()
	if atStop == 0 {
		t.Fatal("repeating timer never fired")
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	after := fired
	mu.Unlock()
	// One dispatch may have been in flight when Stop returned.
	if after > atStop+1 {
		t.Errorf("timer kept firing after Stop: %d -> %d", atStop, after)
	}
}
