package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ecotrip/internal/trip"
)

// calendarFocus is the focused control of the calendar overlay
type calendarFocus int

const (
	focusStartGrid calendarFocus = iota
	focusEndGrid
	focusConfirm
	calendarFocusCount
)

// calendarState holds the two pickers of the calendar overlay
type calendarState struct {
	Focus calendarFocus
	Start MonthGrid
	End   MonthGrid
}

func newCalendarState(f trip.Form) calendarState {
	start := f.Request.StartDate
	if start.IsZero() {
		start = f.Window.Today
	}
	end := f.Request.EndDate
	if end.IsZero() {
		end = start
	}
	return calendarState{
		Focus: focusStartGrid,
		Start: NewMonthGrid(start),
		End:   NewMonthGrid(end),
	}
}

// enterOverlay resets per-overlay state after the active overlay changed
func (m PlannerModel) enterOverlay() PlannerModel {
	switch m.Form.Overlay {
	case trip.OverlayInspiration:
		m.InspirationCursor = 0
		for i, d := range trip.Destinations() {
			if d.Name == m.Form.Request.Destination {
				m.InspirationCursor = i
			}
		}
	case trip.OverlayInterests:
		m.InterestsCursor = 0
	case trip.OverlayCalendar:
		m.RangePicking = false
		m.Calendar = newCalendarState(m.Form)
	}
	return m
}

// updateInspiration handles keys in the inspiration overlay
func (m PlannerModel) updateInspiration(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	dests := trip.Destinations()

	switch msg.String() {
	case "up", "k", "shift+tab":
		if m.InspirationCursor > 0 {
			m.InspirationCursor--
		}
	case "down", "j", "tab":
		if m.InspirationCursor < len(dests)-1 {
			m.InspirationCursor++
		}
	case "enter", " ":
		name := dests[m.InspirationCursor].Name
		if err := m.Form.ChooseInspiration(name, m.Viewport); err != nil {
			m.Notice = noticeFor(err)
			return m, nil
		}
		m.DestinationInput.SetValue(name)
		m.destinationDirty = false
	case "esc", "q":
		m.Form.CloseOverlay(trip.OverlayInspiration)
	}
	return m, nil
}

// updateInterests handles keys in the interests overlay. Only Done closes it.
func (m PlannerModel) updateInterests(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	catalog := trip.Interests()
	done := len(catalog)

	switch msg.String() {
	case "up", "k", "shift+tab":
		if m.InterestsCursor > 0 {
			m.InterestsCursor--
		}
	case "down", "j":
		if m.InterestsCursor < done {
			m.InterestsCursor++
		}
	case "tab":
		m.InterestsCursor = done
	case "enter", " ":
		if m.InterestsCursor == done {
			m.Form.CloseOverlay(trip.OverlayInterests)
			return m, nil
		}
		tag := catalog[m.InterestsCursor].Tag
		if err := m.Form.ToggleInterest(tag, !m.Form.Request.HasInterest(tag)); err != nil {
			m.Notice = noticeFor(err)
		}
	}
	return m, nil
}

// updateCalendar handles keys in the calendar overlay. Picks write
// immediately; only Confirm Dates closes it.
func (m PlannerModel) updateCalendar(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.Calendar.Focus = (m.Calendar.Focus + 1) % calendarFocusCount
		return m, nil
	case "shift+tab":
		m.Calendar.Focus = (m.Calendar.Focus + calendarFocusCount - 1) % calendarFocusCount
		return m, nil
	}

	switch m.Calendar.Focus {
	case focusStartGrid:
		grid, picked := m.startGrid().Update(msg)
		m.Calendar.Start = grid
		if !picked {
			return m, nil
		}
		if err := m.Form.PickStartDate(grid.Cursor); err != nil {
			m.Notice = noticeFor(err)
			return m, nil
		}
		if m.Form.Request.EndDate.IsZero() {
			m.Calendar.End.Cursor = grid.Cursor
		}
		m.Calendar.Focus = focusEndGrid

	case focusEndGrid:
		grid, picked := m.endGrid().Update(msg)
		m.Calendar.End = grid
		if !picked {
			return m, nil
		}
		if err := m.Form.PickEndDate(grid.Cursor); err != nil {
			m.Notice = noticeFor(err)
			return m, nil
		}
		m.Calendar.Focus = focusConfirm

	case focusConfirm:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			m.Form.CloseOverlay(trip.OverlayCalendar)
		}
	}
	return m, nil
}

// startGrid returns the start picker bound to the current request
func (m PlannerModel) startGrid() MonthGrid {
	g := m.Calendar.Start
	w, end := m.Form.Window, m.Form.Request.EndDate
	g.Disabled = func(d time.Time) bool { return w.StartDisabled(d, end) }
	g.RangeStart = m.Form.Request.StartDate
	g.RangeEnd = end
	return g
}

// endGrid returns the end picker bound to the current request
func (m PlannerModel) endGrid() MonthGrid {
	g := m.Calendar.End
	w, start := m.Form.Window, m.Form.Request.StartDate
	g.Disabled = func(d time.Time) bool { return w.EndDisabled(d, start) }
	g.RangeStart = start
	g.RangeEnd = m.Form.Request.EndDate
	return g
}

func (m PlannerModel) modalStyle(requested int) lipgloss.Style {
	return ModalStyle.Width(SafeModalWidth(requested, m.Width))
}

func (m PlannerModel) renderInspirationModal() string {
	lines := []string{
		RenderTitle("Need inspiration?"),
		RenderSubtitle("Sustainable destinations worth a visit"),
		"",
	}
	for i, d := range trip.Destinations() {
		lines = append(lines, RenderMenuItem(d.Name, i == m.InspirationCursor))
		lines = append(lines, "    "+PlaceholderStyle.Render(d.Description))
	}
	lines = append(lines, "", BuildFooterContent("↑/↓ move • enter choose • esc close"))

	return m.modalStyle(64).Render(strings.Join(lines, "\n"))
}

func (m PlannerModel) renderInterestsModal() string {
	lines := []string{
		RenderTitle("Your interests"),
		"",
	}
	for i, in := range trip.Interests() {
		box := "[ ]"
		if m.Form.Request.HasInterest(in.Tag) {
			box = "[x]"
		}
		lines = append(lines, RenderMenuItem(fmt.Sprintf("%s %s", box, in.Label), i == m.InterestsCursor))
	}
	lines = append(lines,
		"",
		RenderButton("Done", m.InterestsCursor == len(trip.Interests())),
		"",
		BuildFooterContent("↑/↓ move • space toggle • tab done"),
	)

	return m.modalStyle(48).Render(strings.Join(lines, "\n"))
}

func (m PlannerModel) renderCalendarModal() string {
	req := m.Form.Request
	parts := []string{
		RenderTitle("Select your dates"),
	}
	if m.Notice != "" {
		parts = append(parts, NoticeStyle.Render("⚠ "+m.Notice))
	}
	parts = append(parts,
		"",
		m.startGrid().View("Start: "+valueOr(formatDay(req.StartDate), "not set"), m.Calendar.Focus == focusStartGrid),
		"",
		m.endGrid().View("End: "+valueOr(formatDay(req.EndDate), "not set"), m.Calendar.Focus == focusEndGrid),
		"",
		RenderButton("Confirm Dates", m.Calendar.Focus == focusConfirm),
		"",
		BuildFooterContent("arrows move • [/] month • enter pick • tab next"),
	)

	return m.modalStyle(40).Render(strings.Join(parts, "\n"))
}
