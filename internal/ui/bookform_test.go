package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"curbcall/internal/booking"
)

func newBookForm(t *testing.T) *BookFormView {
	t.Helper()
	store, err := booking.Open("")
	if err != nil {
		t.Fatalf("booking.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewBookFormView(store)
}

func (v *BookFormView) fill(pickup, dest, date, tm string) {
	v.inputs[fieldPickup].SetValue(pickup)
	v.inputs[fieldDestination].SetValue(dest)
	v.inputs[fieldDate].SetValue(date)
	v.inputs[fieldTime].SetValue(tm)
}

// futureDate returns a date a week out, so the not-in-the-past rule
// never trips.
func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(booking.DateLayout)
}

func TestBookForm_EmptySubmitShowsFieldErrors(t *testing.T) {
	v := newBookForm(t)

	_, cmd := v.Update(keyMsg("ctrl+s"))
	if cmd != nil {
		t.Fatal("invalid form must not produce a save command")
	}
	errs := v.Errors()
	for _, key := range []string{"pickup", "destination", "date", "time"} {
		if errs[key] == "" {
			t.Errorf("expected error for %s", key)
		}
	}
	if v.focus != fieldPickup {
		t.Errorf("focus should jump to the first bad field, got %d", v.focus)
	}

	view := v.View()
	if !strings.Contains(view, "Pickup location is required") {
		t.Error("view should show the pickup error inline")
	}
}

func TestBookForm_SameLocationRejected(t *testing.T) {
	v := newBookForm(t)
	v.fill("Central Station", "central station", futureDate(), "14:30")

	v.Update(keyMsg("ctrl+s"))
	if v.Errors()["destination"] == "" {
		t.Error("identical pickup and destination should be rejected")
	}
	if v.focus != fieldDestination {
		t.Errorf("focus should land on destination, got %d", v.focus)
	}
}

func TestBookForm_ValidSubmitSavesAndResets(t *testing.T) {
	v := newBookForm(t)
	v.fill("Central Station", "Airport", futureDate(), "14:30")

	_, cmd := v.Update(keyMsg("ctrl+s"))
	if cmd == nil {
		t.Fatal("valid form should produce a save command")
	}
	msg := cmd()
	saved, ok := msg.(BookingSavedMsg)
	if !ok {
		t.Fatalf("expected BookingSavedMsg, got %T", msg)
	}
	if saved.Booking.ID == "" || saved.Booking.Pickup != "Central Station" {
		t.Errorf("unexpected saved booking: %+v", saved.Booking)
	}

	v.Update(saved)
	if got := v.Request().Pickup; got != "" {
		t.Errorf("form should clear after save, pickup=%q", got)
	}
	if !strings.Contains(v.View(), "Ride booked!") {
		t.Error("view should confirm the booking")
	}
}

func TestBookForm_EnterAdvancesThenSubmits(t *testing.T) {
	v := newBookForm(t)
	v.fill("Central Station", "Airport", futureDate(), "14:30")

	// Enter walks pickup -> destination -> date -> time.
	for want := fieldDestination; want <= fieldTime; want++ {
		v.Update(keyMsg("enter"))
		if v.focus != want {
			t.Fatalf("expected focus %d, got %d", want, v.focus)
		}
	}
	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Error("enter on the last field should submit")
	}
}

func TestBookForm_TabCyclesFocus(t *testing.T) {
	v := newBookForm(t)

	v.Update(keyMsg("tab"))
	if v.focus != fieldDestination {
		t.Fatalf("expected destination focus, got %d", v.focus)
	}
	v.Update(keyMsg("shift+tab"))
	if v.focus != fieldPickup {
		t.Fatalf("expected pickup focus, got %d", v.focus)
	}
	v.Update(keyMsg("shift+tab"))
	if v.focus != fieldTime {
		t.Errorf("shift+tab should wrap to the last field, got %d", v.focus)
	}
}

func TestBookForm_SaveFailureKeepsInput(t *testing.T) {
	v := newBookForm(t)
	v.fill("Central Station", "Airport", futureDate(), "14:30")

	v.Update(BookingFailedMsg{Err: errors.New("disk full")})
	if v.Request().Pickup != "Central Station" {
		t.Error("form should keep its contents after a failed save")
	}
	if !strings.Contains(v.View(), "disk full") {
		t.Error("view should surface the storage error")
	}
}

func TestBookForm_ShowsLastBooking(t *testing.T) {
	v := newBookForm(t)

	v.Update(lastBookingMsg{
		booking: booking.Booking{
			ID:      "prev-1",
			Request: booking.Request{Pickup: "Harbor", Destination: "Old Town", Date: "2026-09-01", Time: "09:00"},
		},
		ok: true,
	})
	view := v.View()
	if !strings.Contains(view, "Harbor") || !strings.Contains(view, "Old Town") {
		t.Error("view should show the previous booking snapshot")
	}
}

func TestBookForm_TypingGoesToFocusedField(t *testing.T) {
	v := newBookForm(t)

	v.Update(keyMsg("C"))
	v.Update(keyMsg("a"))
	v.Update(keyMsg("b"))
	if got := v.Request().Pickup; got != "Cab" {
		t.Errorf("expected typed text in pickup, got %q", got)
	}
}
