// Package content holds the landing copy: nav links, hero, service tabs,
// testimonials, stats, and prose sections. The document is loaded from
// YAML (an embedded default, or an operator-supplied file) and handed to
// views as typed values; section lookups report a tri-state presence so
// callers can distinguish a missing section from an empty one.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Presence is the result of a section lookup.
type Presence int

const (
	// Absent means the section does not appear in the document.
	Absent Presence = iota
	// PresentEmpty means the section appears but has no entries.
	PresentEmpty
	// Present means the section has at least one entry.
	Present
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case PresentEmpty:
		return "empty"
	case Present:
		return "present"
	default:
		return "unknown"
	}
}

// NavLink is one navigation bar entry.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Hero is the above-the-fold block.
type Hero struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	CTA     string `yaml:"cta"`
}

// Service is one tab in the services switcher.
type Service struct {
	Name    string   `yaml:"name"`
	Summary string   `yaml:"summary"`
	Points  []string `yaml:"points"`
}

// Testimonial is one carousel slide.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Rating int    `yaml:"rating"`
}

// Stat is an animated counter (rides served, average rating, ...).
type Stat struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
}

// Section is a prose block revealed as it scrolls into view.
type Section struct {
	ID      string `yaml:"id"`
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Document is the full landing copy.
type Document struct {
	Brand        string        `yaml:"brand"`
	Nav          []NavLink     `yaml:"nav"`
	Hero         Hero          `yaml:"hero"`
	Services     []Service     `yaml:"services"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Stats        []Stat        `yaml:"stats"`
	Sections     []Section     `yaml:"sections"`
	Footer       string        `yaml:"footer"`
}

// Parse decodes a YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if doc.Brand == "" {
		return nil, fmt.Errorf("parse content: brand is required")
	}
	return &doc, nil
}

// LoadFile reads and parses a content file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Default parses the embedded landing copy. The embedded document is
// part of the build, so a failure here is a programming error.
func Default() *Document {
	doc, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return doc
}

// NavSection returns the nav links with their presence.
func (d *Document) NavSection() ([]NavLink, Presence) {
	return d.Nav, slicePresence(d.Nav)
}

// ServiceSection returns the service tabs with their presence.
func (d *Document) ServiceSection() ([]Service, Presence) {
	return d.Services, slicePresence(d.Services)
}

// TestimonialSection returns the carousel slides with their presence.
func (d *Document) TestimonialSection() ([]Testimonial, Presence) {
	return d.Testimonials, slicePresence(d.Testimonials)
}

// StatSection returns the counters with their presence.
func (d *Document) StatSection() ([]Stat, Presence) {
	return d.Stats, slicePresence(d.Stats)
}

// ProseSections returns the reveal-on-scroll sections with their presence.
func (d *Document) ProseSections() ([]Section, Presence) {
	return d.Sections, slicePresence(d.Sections)
}

// slicePresence maps a decoded slice to the tri-state: YAML leaves the
// slice nil when the key is missing and non-nil when it is present.
func slicePresence[T any](s []T) Presence {
	switch {
	case s == nil:
		return Absent
	case len(s) == 0:
		return PresentEmpty
	default:
		return Present
	}
}
