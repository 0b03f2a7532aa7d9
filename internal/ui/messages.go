package ui

import (
	"time"

	"curbcall/internal/booking"
	"curbcall/internal/deck"
)

// DeckChangedMsg is posted when the testimonial deck lands on a slide,
// whether by key, swipe, or autoplay tick.
type DeckChangedMsg struct {
	Frame deck.Frame
}

// SectionRevealedMsg is posted when a home section scrolls into view for
// the first time.
type SectionRevealedMsg struct {
	ID string
}

// BookingSavedMsg reports a persisted ride request.
type BookingSavedMsg struct {
	Booking booking.Booking
}

// BookingFailedMsg reports a storage failure; the form stays filled so
// the user can retry.
type BookingFailedMsg struct {
	Err error
}

// heroTickMsg drives the letter-by-letter hero title animation.
type heroTickMsg time.Time

// counterTickMsg drives the stat counter count-up animation.
type counterTickMsg time.Time
