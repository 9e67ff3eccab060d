package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ecotrip/internal/trip"
)

// calendarKeyMap defines key bindings inside a month grid
type calendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Pick      key.Binding
}

func newCalendarKeyMap() calendarKeyMap {
	return calendarKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup/[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn/]", "next month")),
		Pick:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
	}
}

// MonthGrid is a single-month day picker. Days are civil days at UTC
// midnight, as produced by trip.Day.
type MonthGrid struct {
	Cursor   time.Time
	Disabled func(time.Time) bool

	// Highlighted range; either end may be zero
	RangeStart time.Time
	RangeEnd   time.Time

	keys calendarKeyMap
}

// NewMonthGrid creates a grid with the cursor on day
func NewMonthGrid(day time.Time) MonthGrid {
	return MonthGrid{Cursor: trip.Day(day), keys: newCalendarKeyMap()}
}

// MoveDays shifts the cursor by n days
func (g MonthGrid) MoveDays(n int) MonthGrid {
	g.Cursor = g.Cursor.AddDate(0, 0, n)
	return g
}

// MoveMonths shifts the cursor by n months, clamping the day to the target
// month's length
func (g MonthGrid) MoveMonths(n int) MonthGrid {
	y, m, d := g.Cursor.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(first); d > last {
		d = last
	}
	g.Cursor = time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
	return g
}

// IsDisabled reports whether day cannot be picked
func (g MonthGrid) IsDisabled(day time.Time) bool {
	return g.Disabled != nil && g.Disabled(day)
}

// Update moves the cursor. picked is true when the user chose the cursor day.
func (g MonthGrid) Update(msg tea.KeyMsg) (grid MonthGrid, picked bool) {
	switch {
	case key.Matches(msg, g.keys.Left):
		return g.MoveDays(-1), false
	case key.Matches(msg, g.keys.Right):
		return g.MoveDays(1), false
	case key.Matches(msg, g.keys.Up):
		return g.MoveDays(-7), false
	case key.Matches(msg, g.keys.Down):
		return g.MoveDays(7), false
	case key.Matches(msg, g.keys.PrevMonth):
		return g.MoveMonths(-1), false
	case key.Matches(msg, g.keys.NextMonth):
		return g.MoveMonths(1), false
	case key.Matches(msg, g.keys.Pick):
		return g, true
	}
	return g, false
}

// View renders the month containing the cursor
func (g MonthGrid) View(title string, focused bool) string {
	y, m, _ := g.Cursor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	titleStyle := LabelStyle
	if focused {
		titleStyle = SelectedLabelStyle
	}

	lines := []string{
		titleStyle.Render(title),
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %d", m, y)),
		WeekdayStyle.Render("Mo Tu We Th Fr Sa Su"),
	}

	// Monday-first offset
	offset := (int(first.Weekday()) + 6) % 7
	cells := make([]string, 0, 42)
	for i := 0; i < offset; i++ {
		cells = append(cells, "  ")
	}
	for d := 1; d <= daysIn(first); d++ {
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		cells = append(cells, g.dayStyle(day, focused).Render(fmt.Sprintf("%2d", d)))
	}

	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		lines = append(lines, strings.Join(cells[start:end], " "))
	}

	return strings.Join(lines, "\n")
}

func (g MonthGrid) dayStyle(day time.Time, focused bool) lipgloss.Style {
	switch {
	case focused && day.Equal(g.Cursor):
		return CursorDayStyle
	case g.IsDisabled(day):
		return DisabledDayStyle
	case day.Equal(g.RangeStart) || day.Equal(g.RangeEnd):
		return SelectedDayStyle
	case !g.RangeStart.IsZero() && !g.RangeEnd.IsZero() && day.After(g.RangeStart) && day.Before(g.RangeEnd):
		return InRangeDayStyle
	default:
		return DayStyle
	}
}

// daysIn returns the number of days in t's month
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// formatDay renders a civil day for form rows, or "" when unset
func formatDay(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Mon 2 Jan 2006")
}

// formatRange renders the date row value
func formatRange(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return ""
	case end.IsZero():
		return formatDay(start) + " → …"
	case start.IsZero():
		return "… → " + formatDay(end)
	default:
		return formatDay(start) + " → " + formatDay(end)
	}
}
