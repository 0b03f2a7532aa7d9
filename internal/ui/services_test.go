package ui

import (
	"strings"
	"testing"

	"curbcall/internal/content"
)

func TestServices_ArrowsSwitchCategories(t *testing.T) {
	sink := &recordSink{}
	v := NewServicesView(content.Default(), sink)

	v.Update(keyMsg("right"))
	if v.Selected() != 1 {
		t.Fatalf("expected category 1, got %d", v.Selected())
	}
	ev, ok := sink.last()
	if !ok || ev.Name != "tab_selected" || !strings.HasPrefix(ev.Attrs["tab"], "services:") {
		t.Errorf("expected services tab event, got %+v", ev)
	}

	v.Update(keyMsg("left"))
	v.Update(keyMsg("left"))
	if v.Selected() != 2 {
		t.Errorf("expected left to wrap to the last category, got %d", v.Selected())
	}
}

func TestServices_ViewShowsActiveCategory(t *testing.T) {
	doc := content.Default()
	v := NewServicesView(doc, &recordSink{})

	services, _ := doc.ServiceSection()
	view := v.View()
	if !strings.Contains(view, services[0].Summary) {
		t.Error("view should show the active category summary")
	}
	for _, p := range services[0].Points {
		if !strings.Contains(view, p) {
			t.Errorf("view should list point %q", p)
		}
	}
}

func TestServices_EmptyStates(t *testing.T) {
	v := NewServicesView(&content.Document{Brand: "X"}, &recordSink{})
	if !strings.Contains(v.View(), "No services section") {
		t.Error("absent section should say so")
	}
	// Keys on an empty switcher must not panic or emit.
	v.Update(keyMsg("right"))

	v2 := NewServicesView(&content.Document{Brand: "X", Services: []content.Service{}}, &recordSink{})
	if !strings.Contains(v2.View(), "No services listed") {
		t.Error("empty section should say so")
	}
}
