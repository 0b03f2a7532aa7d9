package ui

import (
	"strings"

	"curbcall/internal/analytics"
	"curbcall/internal/appctx"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// switchTabMsg requests a top-level tab change.
type switchTabMsg struct {
	Tab AppTab
}

// AppModel is the root model: a tab bar over the four page views.
type AppModel struct {
	Tab          AppTab
	Home         *HomeView
	Services     *ServicesView
	Testimonials *TestimonialsView
	Book         *BookFormView
	Keys         *KeybindRegistry
	App          *appctx.App

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. The notifier must be
// attached to the running program before any timer fires; Post buffers
// until then, so construction order is not racy.
func NewAppModel(app *appctx.App, notifier *Notifier) *AppModel {
	reg := NewKeybindRegistry()
	reg.Bind("1-4", nil, "switch tab") // display-only; digits handled below
	reg.Bind("q", tea.Quit, "quit")
	reg.BindHidden("ctrl+c", tea.Quit)

	m := &AppModel{
		Tab:          TabHome,
		Home:         NewHomeView(app.Content, app.Scheduler, notifier, app.Log, app.Config.ReducedMotion),
		Services:     NewServicesView(app.Content, app.Analytics),
		Testimonials: NewTestimonialsView(app.Content, app.Scheduler, notifier, app.Config.AutoplayPeriod),
		Book:         NewBookFormView(app.Bookings),
		Keys:         reg,
		App:          app,
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close tears down every component that owns timers.
func (m *AppModel) Close() {
	m.Testimonials.Close()
	m.Home.Close()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.Home.Init(),
		a.Services.Init(),
		a.Testimonials.Init(),
		a.Book.Init(),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view tracks its own size.
		var cmds []tea.Cmd
		cmds = append(cmds, a.updateView(TabHome, msg))
		cmds = append(cmds, a.updateView(TabServices, msg))
		cmds = append(cmds, a.updateView(TabTestimonials, msg))
		cmds = append(cmds, a.updateView(TabBook, msg))
		return a, tea.Batch(cmds...)

	case switchTabMsg:
		return a, a.switchTab(msg.Tab)

	case DeckChangedMsg:
		a.App.Analytics.Emit(analytics.SlideViewed(msg.Frame.Index))
		return a, a.updateView(TabTestimonials, msg)

	case SectionRevealedMsg:
		a.App.Analytics.Emit(analytics.SectionRevealed(msg.ID))
		a.App.Log.Debug("section revealed", zap.String("id", msg.ID))
		return a, a.updateView(TabHome, msg)

	case BookingSavedMsg:
		a.App.Analytics.Emit(analytics.BookingSubmitted(msg.Booking.ID))
		a.App.Log.Info("booking saved", zap.String("id", msg.Booking.ID))
		return a, a.updateView(TabBook, msg)

	case BookingFailedMsg:
		a.App.Log.Error("booking save failed", zap.Error(msg.Err))
		return a, a.updateView(TabBook, msg)

	case lastBookingMsg:
		return a, a.updateView(TabBook, msg)

	case heroTickMsg, counterTickMsg:
		// Home's animation chains must keep ticking while another tab
		// is in front, or a mid-animation tab switch freezes them.
		return a, a.updateView(TabHome, msg)

	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}
		return a, a.updateView(a.Tab, msg)
	}

	return a, a.updateView(a.Tab, msg)
}

// handleKey runs global navigation keys. On the booking tab most keys
// belong to the text inputs, so only esc and ctrl+c stay global there.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := msg.String()

	if a.Tab == TabBook {
		switch s {
		case "ctrl+c":
			return tea.Quit, true
		case "esc":
			return a.switchTab(TabHome), true
		}
		return nil, false
	}

	switch s {
	case "1":
		return a.switchTab(TabHome), true
	case "2":
		return a.switchTab(TabServices), true
	case "3":
		return a.switchTab(TabTestimonials), true
	case "4":
		return a.switchTab(TabBook), true
	case "tab":
		return a.switchTab((a.Tab + 1) % tabCount), true
	case "shift+tab":
		return a.switchTab((a.Tab + tabCount - 1) % tabCount), true
	case "esc":
		if a.Tab != TabHome {
			return a.switchTab(TabHome), true
		}
		return nil, true
	}

	if handled, cmd := a.Keys.Handle(msg); handled {
		return cmd, true
	}
	return nil, false
}

// switchTab changes the active tab, moving carousel focus (autoplay
// follows attention) and reporting the navigation.
func (a *appModelAdapter) switchTab(tab AppTab) tea.Cmd {
	if tab == a.Tab {
		return nil
	}
	a.Testimonials.SetFocused(tab == TabTestimonials)
	a.Tab = tab
	a.App.Analytics.Emit(analytics.TabSelected(tab.String()))
	return nil
}

// updateView routes msg to one view and stores the result.
func (a *appModelAdapter) updateView(tab AppTab, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var v View
	switch tab {
	case TabHome:
		v, cmd = a.Home.Update(msg)
		a.Home = v.(*HomeView)
	case TabServices:
		v, cmd = a.Services.Update(msg)
		a.Services = v.(*ServicesView)
	case TabTestimonials:
		v, cmd = a.Testimonials.Update(msg)
		a.Testimonials = v.(*TestimonialsView)
	case TabBook:
		v, cmd = a.Book.Update(msg)
		a.Book = v.(*BookFormView)
	}
	return cmd
}

// currentView returns the active tab's view.
func (a *appModelAdapter) currentView() View {
	switch a.Tab {
	case TabServices:
		return a.Services
	case TabTestimonials:
		return a.Testimonials
	case TabBook:
		return a.Book
	default:
		return a.Home
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	header := a.renderHeader()
	body := a.currentView().View()
	help := Styles.Muted.Render(a.helpLine())
	return header + "\n" + body + "\n" + help
}

// renderHeader draws the brand and nav tab bar. Once the home page
// scrolls off the top the bar restyles with an underline, the sticky
// navbar treatment.
func (a *appModelAdapter) renderHeader() string {
	brand := Styles.Title.Render(a.App.Content.Brand)

	tabs := make([]string, tabCount)
	for i := 0; i < tabCount; i++ {
		t := AppTab(i)
		label := t.String()
		if t == a.Tab {
			tabs[i] = Styles.Selected.Render(label)
		} else {
			tabs[i] = Styles.Muted.Render(label)
		}
	}
	bar := brand + "   " + strings.Join(tabs, "  ")

	style := lipgloss.NewStyle()
	if a.Tab == TabHome && a.Home.Scrolled() {
		style = style.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color(ColorHighlight))
	}
	return style.Render(bar)
}

// helpLine composes the global hints with the registry's bindings.
func (a *appModelAdapter) helpLine() string {
	hints := a.Keys.HelpLine()
	if a.Tab == TabBook {
		hints = "esc back · ctrl+c quit"
	}
	return hints
}
