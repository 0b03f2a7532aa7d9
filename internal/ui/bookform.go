package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"curbcall/internal/booking"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
)

// Form field order.
const (
	fieldPickup = iota
	fieldDestination
	fieldDate
	fieldTime
	fieldCount
)

// lastBookingMsg carries the stored snapshot shown on entry.
type lastBookingMsg struct {
	booking booking.Booking
	ok      bool
}

// BookFormView is the ride request form: four inputs, inline validation,
// and persistence through the booking store.
type BookFormView struct {
	store  *booking.Store
	inputs [fieldCount]textinput.Model
	focus  int
	errs   map[string]string
	saving bool
	saved  *booking.Booking
	last   *booking.Booking
	width  int
}

// Ensure BookFormView implements View.
var _ View = (*BookFormView)(nil)

var fieldLabels = [fieldCount]string{"Pickup", "Destination", "Date", "Time"}
var fieldKeys = [fieldCount]string{"pickup", "destination", "date", "time"}

// NewBookFormView builds the form.
func NewBookFormView(store *booking.Store) *BookFormView {
	v := &BookFormView{store: store, width: 80}

	placeholders := [fieldCount]string{
		"Central Station", "Airport, Terminal 2",
		booking.DateLayout, booking.TimeLayout,
	}
	for i := range v.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 36
		ti.Prompt = "> "
		v.inputs[i] = ti
	}
	v.inputs[fieldPickup].Focus()
	return v
}

// Init implements View.
func (v *BookFormView) Init() tea.Cmd {
	return loadLastBookingCmd(v.store)
}

// Update implements View.
func (v *BookFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case lastBookingMsg:
		if msg.ok {
			b := msg.booking
			v.last = &b
		}
		return v, nil

	case BookingSavedMsg:
		v.saving = false
		v.saved = &msg.Booking
		v.last = &msg.Booking
		v.errs = nil
		for i := range v.inputs {
			v.inputs[i].SetValue("")
		}
		v.setFocus(fieldPickup)
		return v, nil

	case BookingFailedMsg:
		v.saving = false
		v.errs = map[string]string{"submit": msg.Err.Error()}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			v.setFocus((v.focus + 1) % fieldCount)
			return v, nil
		case "shift+tab", "up":
			v.setFocus((v.focus - 1 + fieldCount) % fieldCount)
			return v, nil
		case "enter":
			if v.focus == fieldTime {
				return v, v.submit()
			}
			v.setFocus(v.focus + 1)
			return v, nil
		case "ctrl+s":
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

// Request returns the form's current contents.
func (v *BookFormView) Request() booking.Request {
	return booking.Request{
		Pickup:      v.inputs[fieldPickup].Value(),
		Destination: v.inputs[fieldDestination].Value(),
		Date:        v.inputs[fieldDate].Value(),
		Time:        v.inputs[fieldTime].Value(),
	}
}

// Errors returns the current validation errors.
func (v *BookFormView) Errors() map[string]string {
	return v.errs
}

// setFocus moves keyboard focus to the given field.
func (v *BookFormView) setFocus(i int) {
	v.inputs[v.focus].Blur()
	v.focus = i
	v.inputs[v.focus].Focus()
}

// submit validates and, when clean, persists the request.
func (v *BookFormView) submit() tea.Cmd {
	if v.saving {
		return nil
	}
	v.saved = nil
	req := v.Request()
	v.errs = req.Validate(time.Now())
	if len(v.errs) > 0 {
		// Jump to the first offending field.
		for i, key := range fieldKeys {
			if _, bad := v.errs[key]; bad {
				v.setFocus(i)
				break
			}
		}
		return nil
	}
	v.saving = true
	store := v.store
	return func() tea.Msg {
		b, err := store.Save(context.Background(), req)
		if err != nil {
			return BookingFailedMsg{Err: err}
		}
		return BookingSavedMsg{Booking: b}
	}
}

// View implements View.
func (v *BookFormView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Book a ride") + "\n\n")

	if v.last != nil && v.saved == nil {
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("Last booking: %s → %s on %s at %s",
			v.last.Pickup, v.last.Destination, v.last.Date, v.last.Time)) + "\n\n")
	}

	for i := range v.inputs {
		label := fieldLabels[i]
		if i == v.focus {
			b.WriteString(Styles.Selected.Render(label) + "\n")
		} else {
			b.WriteString(Styles.Normal.Render(label) + "\n")
		}
		b.WriteString(v.inputs[i].View() + "\n")
		if msg, bad := v.errs[fieldKeys[i]]; bad {
			b.WriteString(Styles.Error.Render("  "+msg) + "\n")
		}
		b.WriteString("\n")
	}

	if msg, bad := v.errs["submit"]; bad {
		b.WriteString(Styles.BoxDanger.Render("Could not save the booking: "+msg) + "\n")
	}
	if v.saved != nil {
		b.WriteString(Styles.BoxOK.Render(fmt.Sprintf("Ride booked! Confirmation %s", shortID(v.saved.ID))) + "\n")
	}
	if v.saving {
		b.WriteString(Styles.Muted.Render("Saving…") + "\n")
	}

	b.WriteString(Styles.Muted.Render("enter/tab next field · ctrl+s submit · esc back"))
	return b.String()
}

// shortID trims a UUID to its first group for display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
