package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/muurk/ecotrip/internal/trip"
)

func TestAccommodationOpensInterests(t *testing.T) {
	tests := []struct {
		name string
		opts trip.Options
		cols int
		want trip.Overlay
	}{
		{name: "narrow default", opts: trip.DefaultOptions(), cols: 40, want: trip.OverlayInterests},
		{name: "narrow minimal", opts: trip.MinimalOptions(), cols: 40, want: trip.OverlayInterests},
		{name: "wide default", opts: trip.DefaultOptions(), cols: 160, want: trip.OverlayNone},
		{name: "wide minimal", opts: trip.MinimalOptions(), cols: 160, want: trip.OverlayNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestApp(tt.opts, tt.cols, nil)
			m = focus(m, RowAccommodation)
			m = press(m, "enter")
			if !m.Planner.EditingAccommodation {
				t.Fatal("accommodation editor not open")
			}

			m = press(m, "down", "enter")
			if got := m.Request().AccommodationType; got != trip.AccommodationHostel {
				t.Errorf("accommodation = %q, want %q", got, trip.AccommodationHostel)
			}
			if m.Planner.EditingAccommodation {
				t.Error("editor still open after choosing")
			}
			if got := m.Planner.Form.Overlay; got != tt.want {
				t.Errorf("overlay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccommodationEditorEscKeepsValue(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 40, nil)
	m = focus(m, RowAccommodation)
	m = press(m, "enter", "down", "esc")

	if m.Planner.EditingAccommodation {
		t.Error("editor still open after esc")
	}
	if m.Request().AccommodationType != trip.AccommodationUnset {
		t.Errorf("accommodation = %q, want unset", m.Request().AccommodationType)
	}
	if m.Planner.Form.Overlay != trip.OverlayNone {
		t.Errorf("overlay = %v, want none", m.Planner.Form.Overlay)
	}
}

func TestInspirationChoice(t *testing.T) {
	tests := []struct {
		name string
		opts trip.Options
		cols int
		want trip.Overlay
	}{
		{name: "narrow default chains to calendar", opts: trip.DefaultOptions(), cols: 40, want: trip.OverlayCalendar},
		{name: "wide default closes", opts: trip.DefaultOptions(), cols: 160, want: trip.OverlayNone},
		{name: "narrow minimal closes", opts: trip.MinimalOptions(), cols: 40, want: trip.OverlayNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestApp(tt.opts, tt.cols, nil)
			m = focus(m, RowInspiration)
			m = press(m, "enter")
			if m.Planner.Form.Overlay != trip.OverlayInspiration {
				t.Fatalf("overlay = %v, want inspiration", m.Planner.Form.Overlay)
			}
			if !strings.Contains(m.View(), "Costa Rica") {
				t.Error("inspiration modal does not list Costa Rica")
			}

			m = press(m, "enter")
			if got := m.Request().Destination; got != "Costa Rica" {
				t.Errorf("destination = %q, want Costa Rica", got)
			}
			if got := m.Planner.DestinationInput.Value(); got != "Costa Rica" {
				t.Errorf("destination input = %q, want Costa Rica", got)
			}
			if got := m.Planner.Form.Overlay; got != tt.want {
				t.Errorf("overlay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspirationShortcutAndEsc(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 40, nil)
	m = focus(m, RowAdults)
	m = press(m, "i")
	if m.Planner.Form.Overlay != trip.OverlayInspiration {
		t.Fatalf("overlay = %v, want inspiration", m.Planner.Form.Overlay)
	}

	m = press(m, "down", "down", "esc")
	if m.Planner.Form.Overlay != trip.OverlayNone {
		t.Errorf("overlay = %v, want none after esc", m.Planner.Form.Overlay)
	}
	if m.Request().Destination != "" {
		t.Errorf("destination = %q, want empty", m.Request().Destination)
	}
}

func TestDestinationCommit(t *testing.T) {
	tests := []struct {
		name  string
		opts  trip.Options
		cols  int
		typed string
		want  trip.Overlay
	}{
		{name: "narrow edit opens calendar", opts: trip.DefaultOptions(), cols: 40, typed: "Peru", want: trip.OverlayCalendar},
		{name: "narrow without edit", opts: trip.DefaultOptions(), cols: 40, want: trip.OverlayNone},
		{name: "wide edit", opts: trip.DefaultOptions(), cols: 160, typed: "Peru", want: trip.OverlayNone},
		{name: "narrow minimal edit", opts: trip.MinimalOptions(), cols: 40, typed: "Peru", want: trip.OverlayNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestApp(tt.opts, tt.cols, nil)
			if tt.typed != "" {
				m = press(m, tt.typed)
			}
			m = press(m, "tab")

			if got := m.Request().Destination; got != tt.typed {
				t.Errorf("destination = %q, want %q", got, tt.typed)
			}
			if got := m.Planner.Form.Overlay; got != tt.want {
				t.Errorf("overlay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterestsOverlay(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 120, nil)
	m = focus(m, RowInterests)
	m = press(m, "enter")
	if m.Planner.Form.Overlay != trip.OverlayInterests {
		t.Fatalf("overlay = %v, want interests", m.Planner.Form.Overlay)
	}

	// Toggle Night Life on, Culture on, then Night Life off
	m = press(m, " ", "down", "down", "down", " ", "up", "up", "up", " ")
	want := []trip.InterestTag{trip.InterestCulture}
	if got := m.Request().Interests; !reflect.DeepEqual(got, want) {
		t.Errorf("interests = %v, want %v", got, want)
	}

	m = press(m, "esc")
	if m.Planner.Form.Overlay != trip.OverlayInterests {
		t.Fatal("esc closed the interests overlay")
	}

	m = press(m, "tab", "enter")
	if m.Planner.Form.Overlay != trip.OverlayNone {
		t.Errorf("overlay = %v, want none after Done", m.Planner.Form.Overlay)
	}
}

func TestTravelerCounts(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 120, nil)

	m = focus(m, RowAdults)
	m = press(m, "-")
	if m.Request().Adults != 1 {
		t.Errorf("adults = %d, want 1", m.Request().Adults)
	}
	m = press(m, "+", "right")
	if m.Request().Adults != 3 {
		t.Errorf("adults = %d, want 3", m.Request().Adults)
	}

	m = focus(m, RowChildren)
	m = press(m, "left")
	if m.Request().Children != 0 {
		t.Errorf("children = %d, want 0", m.Request().Children)
	}
	m = press(m, "+")
	if m.Request().Children != 1 {
		t.Errorf("children = %d, want 1", m.Request().Children)
	}
}

func TestStartingLocationTyping(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 120, nil)
	m = focus(m, RowStartingLocation)
	m = press(m, "Berlin")

	if got := m.Request().StartingLocation; got != "Berlin" {
		t.Errorf("starting location = %q, want Berlin", got)
	}
}

func TestCursorWraps(t *testing.T) {
	m := newTestApp(trip.DefaultOptions(), 120, nil)
	m = press(m, "shift+tab")
	if m.Planner.Cursor != RowSubmit {
		t.Errorf("cursor = %d, want submit row", m.Planner.Cursor)
	}
	m = press(m, "tab")
	if m.Planner.Cursor != RowDestination {
		t.Errorf("cursor = %d, want destination row", m.Planner.Cursor)
	}
	if !m.Planner.DestinationInput.Focused() {
		t.Error("destination input not focused")
	}
}
