// curbcheck validates a landing content file and prints what it found,
// so copy edits can be checked before shipping them to the app.
package main

import (
	"fmt"
	"os"

	"curbcall/internal/content"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: curbcheck <content.yaml>")
		os.Exit(2)
	}

	doc, err := content.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "curbcheck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("brand: %s\n", doc.Brand)

	nav, p := doc.NavSection()
	report("nav links", len(nav), p)
	services, p := doc.ServiceSection()
	report("services", len(services), p)
	testimonials, p := doc.TestimonialSection()
	report("testimonials", len(testimonials), p)
	stats, p := doc.StatSection()
	report("stats", len(stats), p)
	sections, p := doc.ProseSections()
	report("sections", len(sections), p)

	if doc.Footer == "" {
		fmt.Println("footer: missing")
	}
}

func report(name string, n int, p content.Presence) {
	switch p {
	case content.Absent:
		fmt.Printf("%s: absent\n", name)
	case content.PresentEmpty:
		fmt.Printf("%s: present but empty\n", name)
	default:
		fmt.Printf("%s: %d\n", name, n)
	}
}
