package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "220" // Taxi yellow - titles, highlights, active tab
	ColorHighlight = "214" // Amber - selected items, borders
	ColorDanger    = "196" // Red - validation errors
	ColorMuted     = "241" // Gray - dimmed text, hints, unrevealed sections
	ColorText      = "252" // Light gray - normal text
	ColorOK        = "77"  // Green - success notices
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Title styles
	Title   lipgloss.Style // Bold accent - main titles
	Section lipgloss.Style // Section headings

	// Box styles
	Box       lipgloss.Style // Standard rounded box (highlight border)
	BoxOK     lipgloss.Style // Success box
	BoxDanger lipgloss.Style // Error box

	// Text styles
	Selected lipgloss.Style // Active tab / selected item
	Normal   lipgloss.Style // Body text
	Muted    lipgloss.Style // Dimmed text, hints
	Hidden   lipgloss.Style // Not-yet-revealed sections
	Error    lipgloss.Style // Inline validation message
	OK       lipgloss.Style // Inline success message
	Dot      lipgloss.Style // Active carousel indicator
	DotDim   lipgloss.Style // Inactive carousel indicator
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	BoxOK: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorOK)).
		Padding(0, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 2),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hidden: lipgloss.NewStyle().
		Foreground(lipgloss.Color("236")),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	OK: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOK)),
	Dot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	DotDim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
