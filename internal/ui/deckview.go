package ui

import (
	"fmt"
	"strings"
	"time"

	"curbcall/internal/content"
	"curbcall/internal/deck"
	"curbcall/internal/sched"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// swipeCells is the drag distance, in terminal cells, that counts as a
// swipe. Far narrower than the pointer-pixel default since a cell is
// several pixels wide.
const swipeCells = 6

// TestimonialsView renders the carousel over a slide deck. Autoplay runs
// while the tab is focused and pauses during a drag, mirroring the
// hover-pause behavior of a pointer UI.
type TestimonialsView struct {
	deck     *deck.Deck[content.Testimonial]
	presence content.Presence

	width        int
	focused      bool
	wantAutoplay bool
	dragging     bool
	dragStartX   int
}

// Ensure TestimonialsView implements View.
var _ View = (*TestimonialsView)(nil)

// NewTestimonialsView builds the carousel. Slide changes — keys, swipes,
// autoplay ticks — are posted through the notifier so autoplay
// advancement re-renders immediately.
func NewTestimonialsView(doc *content.Document, s sched.Scheduler, notifier *Notifier, period time.Duration) *TestimonialsView {
	slides, presence := doc.TestimonialSection()
	d := deck.New(slides, deck.Options{
		AutoplayPeriod: period,
		SwipeThreshold: swipeCells,
		Scheduler:      s,
		OnChange: func(f deck.Frame) {
			notifier.Post(DeckChangedMsg{Frame: f})
		},
	})
	return &TestimonialsView{
		deck:         d,
		presence:     presence,
		width:        80,
		wantAutoplay: true,
	}
}

// Deck exposes the underlying slide deck.
func (v *TestimonialsView) Deck() *deck.Deck[content.Testimonial] {
	return v.deck
}

// SetFocused starts autoplay when the tab gains attention and stops it
// when the user navigates away.
func (v *TestimonialsView) SetFocused(focused bool) {
	v.focused = focused
	if focused && v.wantAutoplay {
		v.deck.StartAutoplay()
	} else {
		v.deck.StopAutoplay()
	}
}

// Close stops the autoplay timer for teardown.
func (v *TestimonialsView) Close() {
	v.deck.Close()
}

// Init implements View.
func (v *TestimonialsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TestimonialsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.deck.Previous()
		case "right", "l":
			v.deck.Next()
		case " ":
			v.wantAutoplay = !v.wantAutoplay
			if v.wantAutoplay && v.focused {
				v.deck.StartAutoplay()
			} else {
				v.deck.StopAutoplay()
			}
		}
		return v, nil

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			v.dragging = true
			v.dragStartX = msg.X
			v.deck.StopAutoplay() // pointer down pauses, like hover
		case msg.Action == tea.MouseActionRelease && v.dragging:
			v.dragging = false
			v.deck.HandleSwipe(v.dragStartX, msg.X)
			if v.wantAutoplay && v.focused {
				v.deck.StartAutoplay()
			}
		}
		return v, nil

	case DeckChangedMsg:
		// State already moved; re-render happens on return.
		return v, nil
	}
	return v, nil
}

// View implements View.
func (v *TestimonialsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("What riders say") + "\n\n")

	switch v.presence {
	case content.Absent:
		b.WriteString(Styles.Muted.Render("No testimonials section in this content file."))
		return b.String()
	case content.PresentEmpty:
		b.WriteString(Styles.Muted.Render("No testimonials yet — be the first to ride."))
		return b.String()
	}

	slide, ok := v.deck.Current()
	if !ok {
		return b.String()
	}

	boxWidth := v.width - 6
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 24 {
		boxWidth = 24
	}

	quote := lipgloss.NewStyle().Width(boxWidth - 4).Render("“" + slide.Quote + "”")
	who := Styles.Selected.Render(slide.Author)
	if slide.Role != "" {
		who += Styles.Muted.Render("  " + slide.Role)
	}
	card := quote + "\n\n" + who + "\n" + renderRating(slide.Rating)
	b.WriteString(Styles.Box.Width(boxWidth).Render(card) + "\n")

	frame := v.deck.Frame()
	b.WriteString(renderDots(frame) + "\n\n")

	status := "autoplay on"
	if !v.deck.AutoplayActive() {
		status = "autoplay off"
	}
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d/%d · %s · ←/→ navigate · space toggle · drag to swipe",
		frame.Index+1, frame.Count, status)))
	return b.String()
}

// renderDots draws the indicator row from the deck frame.
func renderDots(f deck.Frame) string {
	dots := make([]string, len(f.Indicators))
	for i, active := range f.Indicators {
		if active {
			dots[i] = Styles.Dot.Render("●")
		} else {
			dots[i] = Styles.DotDim.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderRating draws filled and hollow stars for a 1-5 rating.
func renderRating(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 5 {
		rating = 5
	}
	return Styles.Dot.Render(strings.Repeat("★", rating)) +
		Styles.DotDim.Render(strings.Repeat("☆", 5-rating))
}
