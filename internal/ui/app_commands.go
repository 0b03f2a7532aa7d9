package ui

import (
	"context"

	"curbcall/internal/booking"

	tea "github.com/charmbracelet/bubbletea"
)

// loadLastBookingCmd fetches the stored booking snapshot so the form can
// greet returning riders. Absence and read errors both come back as a
// plain "no snapshot"; the form works fine without one.
func loadLastBookingCmd(store *booking.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return lastBookingMsg{}
		}
		b, ok, err := store.Last(context.Background())
		if err != nil || !ok {
			return lastBookingMsg{}
		}
		return lastBookingMsg{booking: b, ok: true}
	}
}
