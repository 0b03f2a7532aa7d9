package ui

// AppTab is the top-level navigation tab.
type AppTab int

const (
	TabHome AppTab = iota
	TabServices
	TabTestimonials
	TabBook
)

// tabCount is the number of navigation tabs.
const tabCount = 4

func (t AppTab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabServices:
		return "Services"
	case TabTestimonials:
		return "Testimonials"
	case TabBook:
		return "Book a ride"
	default:
		return "Unknown"
	}
}
