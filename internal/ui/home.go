package ui

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"curbcall/internal/content"
	"curbcall/internal/ratelimit"
	"curbcall/internal/reveal"
	"curbcall/internal/sched"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	// scrollEvalInterval throttles visibility passes during scroll bursts.
	scrollEvalInterval = 100 * time.Millisecond
	// resizeEvalInterval debounces visibility passes while resizing settles.
	resizeEvalInterval = 250 * time.Millisecond
	// staggerDelay spaces the reduced-motion fallback reveals.
	staggerDelay = 150 * time.Millisecond
	// heroFrame is the letter-by-letter title animation cadence.
	heroFrame = 40 * time.Millisecond
	// counterFrame is the stat count-up cadence.
	counterFrame = 50 * time.Millisecond
	// counterSteps is how many frames a counter takes to reach its target.
	counterSteps = 24
)

// statsSectionID marks the counter block in reveal notifications.
const statsSectionID = "stats"

// homeSection is one reveal target inside the scrollable home page.
// Geometry fields are guarded by the owning view's mutex because the
// dispatcher queries Bounds from the scheduler goroutine.
type homeSection struct {
	id       string
	heading  string
	body     string
	owner    *HomeView
	line     int
	height   int
	revealed atomic.Bool
}

// Bounds implements reveal.Element.
func (s *homeSection) Bounds() reveal.Box {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return reveal.Box{Top: s.line - s.owner.scroll, Height: s.height}
}

// Reveal implements reveal.Element. The actual restyle happens on the UI
// goroutine; this only posts the notification.
func (s *homeSection) Reveal() {
	if s.revealed.CompareAndSwap(false, true) {
		s.owner.notifier.Post(SectionRevealedMsg{ID: s.id})
	}
}

// counter animates one stat from zero to its target value.
type counter struct {
	stat    content.Stat
	current int
	step    int
}

func (c *counter) advance() {
	c.current += c.step
	if c.current > c.stat.Value {
		c.current = c.stat.Value
	}
}

func (c *counter) done() bool { return c.current >= c.stat.Value }

// HomeView is the landing page: hero, stat counters, and prose sections
// that light up as they scroll into view.
type HomeView struct {
	doc        *content.Document
	vp         viewport.Model
	disp       *reveal.Dispatcher
	resizeEval *ratelimit.Debounce
	notifier   *Notifier
	log        *zap.Logger
	reduced    bool

	mu      sync.Mutex
	scroll  int
	vheight int

	width     int
	ready     bool
	sections  []*homeSection
	statsEl   *homeSection
	counters  []*counter
	counting  bool
	heroShown int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView builds the home page and registers its reveal targets.
func NewHomeView(doc *content.Document, s sched.Scheduler, notifier *Notifier, log *zap.Logger, reducedMotion bool) *HomeView {
	vp := viewport.New(80, 20)

	h := &HomeView{
		doc:      doc,
		vp:       vp,
		notifier: notifier,
		log:      log,
		reduced:  reducedMotion,
	}
	h.disp = reveal.New(reveal.Config{Scheduler: s, Interval: scrollEvalInterval})
	h.resizeEval = ratelimit.NewDebounce(resizeEvalInterval, s, h.evaluate)

	if stats, p := doc.StatSection(); p == content.Present {
		h.statsEl = &homeSection{id: statsSectionID, owner: h}
		// Strict bound: the counters should not fire while the block sits
		// above the fold after a restored scroll position.
		h.disp.Register(h.statsEl, reveal.Options{Mode: reveal.OneShot, Strict: true, ThresholdPx: 1})
		for _, st := range stats {
			step := st.Value / counterSteps
			if step < 1 {
				step = 1
			}
			h.counters = append(h.counters, &counter{stat: st, step: step})
		}
	} else if p == content.Absent {
		log.Debug("no stats section in content")
	}

	sections, p := doc.ProseSections()
	if p != content.Present {
		log.Debug("no prose sections in content", zap.String("presence", p.String()))
	}
	for _, sec := range sections {
		el := &homeSection{id: sec.ID, heading: sec.Heading, body: sec.Body, owner: h}
		h.sections = append(h.sections, el)
		h.disp.Register(el, reveal.Options{Mode: reveal.OneShot, ThresholdPx: 2})
	}

	h.refreshContent()
	return h
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	if h.reduced {
		// No scroll-driven reveals: everything shows on a fixed cadence.
		h.disp.StaggerAll(staggerDelay)
	}
	if len([]rune(h.doc.Hero.Title)) > 0 {
		return heroTickCmd()
	}
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.vp.Width = msg.Width
		h.vp.Height = msg.Height - 4 // header and help line
		if h.vp.Height < 5 {
			h.vp.Height = 5
		}
		h.mu.Lock()
		h.vheight = h.vp.Height
		h.mu.Unlock()
		h.refreshContent()
		if !h.ready {
			h.ready = true
			h.evaluate() // first pass so above-the-fold content shows
		} else {
			h.resizeEval.Call()
		}
		return h, nil

	case heroTickMsg:
		title := []rune(h.doc.Hero.Title)
		if h.heroShown < len(title) {
			h.heroShown++
			h.refreshContent()
		}
		if h.heroShown < len(title) {
			return h, heroTickCmd()
		}
		return h, nil

	case counterTickMsg:
		running := false
		for _, c := range h.counters {
			c.advance()
			if !c.done() {
				running = true
			}
		}
		h.refreshContent()
		if running {
			return h, counterTickCmd()
		}
		return h, nil

	case SectionRevealedMsg:
		h.refreshContent()
		if msg.ID == statsSectionID && !h.counting {
			h.counting = true
			return h, counterTickCmd()
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)

	h.mu.Lock()
	moved := h.vp.YOffset != h.scroll
	h.scroll = h.vp.YOffset
	h.mu.Unlock()
	if moved && !h.reduced {
		h.evaluate()
	}
	return h, cmd
}

// View implements View.
func (h *HomeView) View() string {
	return h.vp.View()
}

// Scrolled reports whether the page has moved off the top; the header
// restyles on it.
func (h *HomeView) Scrolled() bool {
	return h.vp.YOffset > 0
}

// Close tears down the reveal dispatcher and pending rate-limit timers.
func (h *HomeView) Close() {
	h.resizeEval.Stop()
	h.disp.Close()
}

// evaluate requests a rate-limited visibility pass with the current
// viewport height.
func (h *HomeView) evaluate() {
	h.mu.Lock()
	vh := h.vheight
	h.mu.Unlock()
	if vh <= 0 {
		return
	}
	h.disp.Evaluate(reveal.Viewport{Height: vh})
}

// heroTitle returns the animated prefix of the hero title.
func (h *HomeView) heroTitle() string {
	title := []rune(h.doc.Hero.Title)
	if h.heroShown >= len(title) {
		return string(title)
	}
	return string(title[:h.heroShown]) + "▌"
}

// refreshContent rebuilds the scrollable page and records each reveal
// target's line geometry.
func (h *HomeView) refreshContent() {
	width := h.width
	if width <= 0 {
		width = 80
	}
	bodyWidth := width - 2
	if bodyWidth > 76 {
		bodyWidth = 76
	}
	wrap := lipgloss.NewStyle().Width(bodyWidth)

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	hero := h.doc.Hero
	if hero.Eyebrow != "" {
		add(Styles.Muted.Render(hero.Eyebrow))
	}
	add(Styles.Title.Render(h.heroTitle()))
	if hero.Tagline != "" {
		add(wrap.Foreground(lipgloss.Color(ColorText)).Render(hero.Tagline))
	}
	if hero.CTA != "" {
		add(Styles.Muted.Render(hero.CTA))
	}
	add("")

	type placement struct {
		el   *homeSection
		line int
		n    int
	}
	var placements []placement

	if h.statsEl != nil {
		start := len(lines)
		add(h.renderStats())
		add("")
		placements = append(placements, placement{h.statsEl, start, len(lines) - start})
	}

	for _, sec := range h.sections {
		start := len(lines)
		if sec.revealed.Load() {
			add(Styles.Section.Render(sec.heading))
			add(wrap.Foreground(lipgloss.Color(ColorText)).Render(sec.body))
		} else {
			add(Styles.Hidden.Render(sec.heading))
			add(wrap.Foreground(lipgloss.Color("236")).Render(sec.body))
		}
		add("")
		placements = append(placements, placement{sec, start, len(lines) - start})
	}

	if h.doc.Footer != "" {
		add(Styles.Muted.Render(h.doc.Footer))
	}

	h.mu.Lock()
	for _, p := range placements {
		p.el.line = p.line
		p.el.height = p.n
	}
	h.mu.Unlock()

	h.vp.SetContent(strings.Join(lines, "\n"))
}

// renderStats draws the counter row: dimmed placeholders before the
// block reveals, animated values after.
func (h *HomeView) renderStats() string {
	if h.statsEl != nil && !h.statsEl.revealed.Load() {
		parts := make([]string, len(h.counters))
		for i, c := range h.counters {
			parts[i] = "— " + c.stat.Label
		}
		return Styles.Hidden.Render(strings.Join(parts, "   "))
	}
	parts := make([]string, len(h.counters))
	for i, c := range h.counters {
		parts[i] = fmt.Sprintf("%s%s %s",
			Styles.Selected.Render(fmt.Sprintf("%d", c.current)),
			Styles.Selected.Render(c.stat.Suffix),
			Styles.Muted.Render(c.stat.Label),
		)
	}
	return strings.Join(parts, "   ")
}

func heroTickCmd() tea.Cmd {
	return tea.Tick(heroFrame, func(t time.Time) tea.Msg { return heroTickMsg(t) })
}

func counterTickCmd() tea.Cmd {
	return tea.Tick(counterFrame, func(t time.Time) tea.Msg { return counterTickMsg(t) })
}
