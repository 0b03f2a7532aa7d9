package ui

import (
	"strings"

	"curbcall/internal/analytics"
	"curbcall/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ServicesView is the service category switcher: a row of tabs with the
// active category's summary and bullet points below.
type ServicesView struct {
	services []content.Service
	presence content.Presence
	selected int
	width    int
	sink     analytics.Sink
}

// Ensure ServicesView implements View.
var _ View = (*ServicesView)(nil)

// NewServicesView builds the switcher.
func NewServicesView(doc *content.Document, sink analytics.Sink) *ServicesView {
	services, presence := doc.ServiceSection()
	return &ServicesView{
		services: services,
		presence: presence,
		width:    80,
		sink:     sink,
	}
}

// Selected returns the active category index.
func (v *ServicesView) Selected() int {
	return v.selected
}

// Init implements View.
func (v *ServicesView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ServicesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case tea.KeyMsg:
		if len(v.services) == 0 {
			return v, nil
		}
		prev := v.selected
		switch msg.String() {
		case "left", "h":
			v.selected = (v.selected - 1 + len(v.services)) % len(v.services)
		case "right", "l":
			v.selected = (v.selected + 1) % len(v.services)
		}
		if v.selected != prev {
			v.sink.Emit(analytics.TabSelected("services:" + v.services[v.selected].Name))
		}
		return v, nil
	}
	return v, nil
}

// View implements View.
func (v *ServicesView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Services") + "\n\n")

	switch v.presence {
	case content.Absent:
		b.WriteString(Styles.Muted.Render("No services section in this content file."))
		return b.String()
	case content.PresentEmpty:
		b.WriteString(Styles.Muted.Render("No services listed yet."))
		return b.String()
	}

	tabs := make([]string, len(v.services))
	for i, s := range v.services {
		if i == v.selected {
			tabs[i] = Styles.Selected.Render("[ " + s.Name + " ]")
		} else {
			tabs[i] = Styles.Muted.Render("  " + s.Name + "  ")
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	active := v.services[v.selected]
	bodyWidth := v.width - 4
	if bodyWidth > 70 {
		bodyWidth = 70
	}
	wrap := lipgloss.NewStyle().Width(bodyWidth)
	b.WriteString(wrap.Foreground(lipgloss.Color(ColorText)).Render(active.Summary) + "\n\n")
	for _, p := range active.Points {
		b.WriteString(Styles.Normal.Render("  • "+p) + "\n")
	}
	b.WriteString("\n" + Styles.Muted.Render("←/→ switch category"))
	return b.String()
}
