// Package analytics is the interaction event sink. Events are exported
// as OTLP spans when an endpoint is configured; otherwise they are
// dropped by the Nop sink so callers never branch.
package analytics

import (
	"context"
	"strconv"
	"time"
)

// Event is one user interaction.
type Event struct {
	Name  string
	At    time.Time
	Attrs map[string]string
}

// Sink consumes interaction events. Emit must not block the UI.
type Sink interface {
	Emit(Event)
	Close(ctx context.Context) error
}

// Nop discards all events.
type Nop struct{}

func (Nop) Emit(Event)                  {}
func (Nop) Close(context.Context) error { return nil }

// Event constructors keep attribute keys in one place.

// TabSelected records a navigation tab switch.
func TabSelected(name string) Event {
	return Event{Name: "tab_selected", Attrs: map[string]string{"tab": name}}
}

// SlideViewed records the carousel landing on a slide.
func SlideViewed(index int) Event {
	return Event{Name: "slide_viewed", Attrs: map[string]string{"slide": strconv.Itoa(index)}}
}

// SectionRevealed records a section scrolling into view.
func SectionRevealed(id string) Event {
	return Event{Name: "section_revealed", Attrs: map[string]string{"section": id}}
}

// BookingSubmitted records a persisted ride request.
func BookingSubmitted(id string) Event {
	return Event{Name: "booking_submitted", Attrs: map[string]string{"booking_id": id}}
}

