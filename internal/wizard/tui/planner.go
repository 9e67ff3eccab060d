package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/trip"
)

// Row identifies a focusable line of the planner form
type Row int

const (
	RowDestination Row = iota
	RowInspiration
	RowDates
	RowAdults
	RowChildren
	RowAccommodation
	RowInterests
	RowStartingLocation
	RowUseLocation
	RowSubmit
	rowCount
)

// isText reports whether the row is a free-text input
func (r Row) isText() bool {
	return r == RowDestination || r == RowStartingLocation
}

// plannerKeyMap defines key bindings for the planner form
type plannerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Select      key.Binding
	Decrease    key.Binding
	Increase    key.Binding
	Inspiration key.Binding
	Interests   key.Binding
	Locate      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k plannerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Select, k.Inspiration, k.Interests, k.Locate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k plannerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Decrease, k.Increase, k.Inspiration, k.Interests, k.Locate, k.Quit},
	}
}

func newPlannerKeyMap() plannerKeyMap {
	return plannerKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "prev")),
		Down:        key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next")),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Decrease:    key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "fewer")),
		Increase:    key.NewBinding(key.WithKeys("right", "+"), key.WithHelp("→/+", "more")),
		Inspiration: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspire me")),
		Interests:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "interests")),
		Locate:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "my location")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// PlannerModel is the trip details screen and its overlays
type PlannerModel struct {
	Form     trip.Form
	Session  string
	Viewport trip.Viewport

	// UI state
	Width  int
	Height int
	Cursor Row
	Notice string // Last validation message

	DestinationInput textinput.Model
	LocationInput    textinput.Model
	destinationDirty bool

	// Inline editors
	EditingAccommodation bool
	AccommodationCursor  int
	RangePicking         bool
	RangeGrid            MonthGrid

	// Overlay cursors
	InspirationCursor int
	InterestsCursor   int // len(trip.Interests()) is the Done button
	Calendar          calendarState

	// Location lookup
	Resolver        LocationResolver
	LocatorName     string
	LocationLoading bool
	LocationError   string
	locationRequest int
	ctx             context.Context
	cancelLocation  context.CancelFunc
	Spinner         spinner.Model

	QuitRequested bool

	Help help.Model
	Keys plannerKeyMap
}

// NewPlannerModel creates the planner form
func NewPlannerModel(ctx context.Context, form trip.Form, session string, resolver LocationResolver, locatorName string) PlannerModel {
	dest := textinput.New()
	dest.Placeholder = "Where to?"
	dest.CharLimit = 120
	dest.Width = 40
	dest.Prompt = ""

	loc := textinput.New()
	loc.Placeholder = "Starting location"
	loc.CharLimit = 200
	loc.Width = 40
	loc.Prompt = ""

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	m := PlannerModel{
		Form:             form,
		Session:          session,
		Viewport:         trip.ViewportFromColumns(trip.NarrowBreakpoint / trip.CellWidth),
		DestinationInput: dest,
		LocationInput:    loc,
		Resolver:         resolver,
		LocatorName:      locatorName,
		ctx:              ctx,
		Spinner:          s,
		Help:             help.New(),
		Keys:             newPlannerKeyMap(),
	}
	m.DestinationInput.Focus()
	return m
}

// Init initializes the planner
func (m PlannerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.Form

	updated, cmd := m.update(msg)
	if updated.Form.Overlay != before.Overlay {
		updated = updated.enterOverlay()
	}
	updated.logChanges(before)
	return updated, cmd
}

func (m PlannerModel) update(msg tea.Msg) (PlannerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Viewport = trip.ViewportFromColumns(msg.Width)
		return m, nil

	case demoDatesMsg:
		m.Form.ApplyDemoDates()
		return m, nil

	case locationResultMsg:
		return m.handleLocationResult(msg), nil

	case spinner.TickMsg:
		if !m.LocationLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		m.Notice = ""
		switch m.Form.Overlay {
		case trip.OverlayInspiration:
			return m.updateInspiration(msg)
		case trip.OverlayInterests:
			return m.updateInterests(msg)
		case trip.OverlayCalendar:
			return m.updateCalendar(msg)
		}
		if m.EditingAccommodation {
			return m.updateAccommodationEditor(msg)
		}
		if m.RangePicking {
			return m.updateRangePicker(msg)
		}
		return m.updateNormalMode(msg)
	}

	// Cursor blink and other input messages go to the focused text field
	return m.updateFocusedInput(msg)
}

// updateNormalMode handles keys when no editor or overlay is open
func (m PlannerModel) updateNormalMode(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Locate):
		return m.requestLocation()
	case key.Matches(msg, m.Keys.Down):
		return m.moveCursor(1)
	case key.Matches(msg, m.Keys.Up):
		return m.moveCursor(-1)
	}

	if m.Cursor.isText() {
		switch msg.Type {
		case tea.KeyEnter:
			return m.moveCursor(1)
		case tea.KeyEsc:
			if m.Cursor == RowStartingLocation && m.LocationLoading {
				return m.cancelLocationLookup(), nil
			}
			return m, nil
		}
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.QuitRequested = true
		return m, nil
	case key.Matches(msg, m.Keys.Back):
		if m.LocationLoading {
			return m.cancelLocationLookup(), nil
		}
		return m, nil
	case key.Matches(msg, m.Keys.Inspiration):
		return m.openOverlay(trip.OverlayInspiration), nil
	case key.Matches(msg, m.Keys.Interests):
		return m.openOverlay(trip.OverlayInterests), nil
	case key.Matches(msg, m.Keys.Decrease):
		return m.adjustCount(-1), nil
	case key.Matches(msg, m.Keys.Increase):
		return m.adjustCount(1), nil
	case key.Matches(msg, m.Keys.Select):
		return m.activateRow()
	}

	return m, nil
}

// activateRow runs the action of the focused non-text row
func (m PlannerModel) activateRow() (PlannerModel, tea.Cmd) {
	switch m.Cursor {
	case RowInspiration:
		return m.openOverlay(trip.OverlayInspiration), nil
	case RowDates:
		return m.openDates(), nil
	case RowAccommodation:
		m.EditingAccommodation = true
		m.AccommodationCursor = 0
		for i, opt := range trip.Accommodations() {
			if opt.Type == m.Form.Request.AccommodationType {
				m.AccommodationCursor = i
			}
		}
		return m, nil
	case RowInterests:
		return m.openOverlay(trip.OverlayInterests), nil
	case RowUseLocation:
		return m.requestLocation()
	case RowSubmit:
		return m.submit(), nil
	}
	return m, nil
}

// moveCursor focuses the next or previous row, committing the destination
// when it is left after an edit
func (m PlannerModel) moveCursor(delta int) (PlannerModel, tea.Cmd) {
	if m.Cursor == RowDestination && m.destinationDirty {
		m.destinationDirty = false
		m.Form.CommitDestination(m.Viewport)
	}

	m.Cursor = Row((int(m.Cursor) + delta + int(rowCount)) % int(rowCount))

	m.DestinationInput.Blur()
	m.LocationInput.Blur()
	switch m.Cursor {
	case RowDestination:
		return m, m.DestinationInput.Focus()
	case RowStartingLocation:
		return m, m.LocationInput.Focus()
	}
	return m, nil
}

// updateFocusedInput feeds msg to the focused text field and mirrors its
// value into the request
func (m PlannerModel) updateFocusedInput(msg tea.Msg) (PlannerModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Cursor {
	case RowDestination:
		m.DestinationInput, cmd = m.DestinationInput.Update(msg)
		if v := m.DestinationInput.Value(); v != m.Form.Request.Destination {
			m.setField(trip.FieldDestination, v)
			m.destinationDirty = true
		}
	case RowStartingLocation:
		m.LocationInput, cmd = m.LocationInput.Update(msg)
		if v := m.LocationInput.Value(); v != m.Form.Request.StartingLocation {
			m.setField(trip.FieldStartingLocation, v)
		}
	}
	return m, cmd
}

// setField writes a field through the form and records failures as a notice
func (m *PlannerModel) setField(field trip.Field, value any) bool {
	if err := m.Form.SetField(field, value, m.Viewport); err != nil {
		m.Notice = noticeFor(err)
		logging.Debug("Field rejected", zap.String("session", m.Session), zap.String("field", string(field)), zap.Error(err))
		return false
	}
	return true
}

// adjustCount changes the traveler count on the focused row
func (m PlannerModel) adjustCount(delta int) PlannerModel {
	switch m.Cursor {
	case RowAdults:
		if n := m.Form.Request.Adults + delta; n >= 1 {
			m.setField(trip.FieldAdults, n)
		}
	case RowChildren:
		if n := m.Form.Request.Children + delta; n >= 0 {
			m.setField(trip.FieldChildren, n)
		}
	}
	return m
}

// openOverlay shows o in response to a user action
func (m PlannerModel) openOverlay(o trip.Overlay) PlannerModel {
	if err := m.Form.Open(o); err != nil {
		m.Notice = noticeFor(err)
	}
	return m
}

// openDates opens the calendar overlay on narrow terminals when enabled,
// and the inline range picker otherwise
func (m PlannerModel) openDates() PlannerModel {
	if m.Form.Options.CalendarModal && m.Viewport.Class() == trip.ViewportNarrow {
		return m.openOverlay(trip.OverlayCalendar)
	}

	cursor := m.Form.Request.StartDate
	if cursor.IsZero() || m.Form.Window.RangeDisabled(cursor) {
		cursor = m.Form.Window.Today
	}
	m.RangePicking = true
	m.RangeGrid = NewMonthGrid(cursor)
	return m
}

// updateAccommodationEditor handles the inline accommodation list
func (m PlannerModel) updateAccommodationEditor(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	options := trip.Accommodations()

	switch msg.String() {
	case "up", "k":
		if m.AccommodationCursor > 0 {
			m.AccommodationCursor--
		}
	case "down", "j":
		if m.AccommodationCursor < len(options)-1 {
			m.AccommodationCursor++
		}
	case "enter", " ":
		m.EditingAccommodation = false
		m.setField(trip.FieldAccommodationType, options[m.AccommodationCursor].Type)
	case "esc":
		m.EditingAccommodation = false
	}
	return m, nil
}

// updateRangePicker handles the inline date range picker
func (m PlannerModel) updateRangePicker(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.RangePicking = false
		return m, nil
	}

	grid, picked := m.rangeGrid().Update(msg)
	m.RangeGrid = grid
	if !picked {
		return m, nil
	}

	return m.pickRangeDay(grid.Cursor), nil
}

// pickRangeDay applies one click of the range picker: the first pick starts
// a new range, the second completes it, and a pick before the start restarts
func (m PlannerModel) pickRangeDay(day time.Time) PlannerModel {
	req := m.Form.Request
	start, end := day, time.Time{}
	completing := !req.StartDate.IsZero() && req.EndDate.IsZero() && !day.Before(req.StartDate)
	if completing {
		start, end = req.StartDate, day
	}

	if err := m.Form.SetDateRange(start, end); err != nil {
		m.Notice = noticeFor(err)
		return m
	}
	if completing {
		m.RangePicking = false
	}
	return m
}

// rangeGrid returns the range picker grid bound to the current window
func (m PlannerModel) rangeGrid() MonthGrid {
	g := m.RangeGrid
	w := m.Form.Window
	g.Disabled = w.RangeDisabled
	g.RangeStart = m.Form.Request.StartDate
	g.RangeEnd = m.Form.Request.EndDate
	return g
}

// submit advances to the review step
func (m PlannerModel) submit() PlannerModel {
	if m.Cursor == RowDestination && m.destinationDirty {
		m.destinationDirty = false
		m.Form.CommitDestination(m.Viewport)
	}
	if err := m.Form.Submit(); err != nil {
		m.Notice = noticeFor(err)
	}
	return m
}

// logChanges records what an update changed in the form
func (m PlannerModel) logChanges(before trip.Form) {
	after := m.Form
	if before.Overlay != after.Overlay {
		logging.LogOverlayChange(m.Session, before.Overlay.String(), after.Overlay.String(), m.Viewport.Class().String())
	}
	if before.Step != after.Step {
		logging.LogStepChange(m.Session, before.Step.String(), after.Step.String())
	}

	b, a := before.Request, after.Request
	if b.Destination != a.Destination {
		logging.LogFieldChange(m.Session, string(trip.FieldDestination), a.Destination)
	}
	if !b.StartDate.Equal(a.StartDate) {
		logging.LogFieldChange(m.Session, string(trip.FieldStartDate), formatDay(a.StartDate))
	}
	if !b.EndDate.Equal(a.EndDate) {
		logging.LogFieldChange(m.Session, string(trip.FieldEndDate), formatDay(a.EndDate))
	}
	if b.Adults != a.Adults {
		logging.LogFieldChange(m.Session, string(trip.FieldAdults), a.Adults)
	}
	if b.Children != a.Children {
		logging.LogFieldChange(m.Session, string(trip.FieldChildren), a.Children)
	}
	if len(b.Interests) != len(a.Interests) {
		logging.LogFieldChange(m.Session, string(trip.FieldInterests), a.Interests)
	}
	if b.StartingLocation != a.StartingLocation {
		logging.LogFieldChange(m.Session, string(trip.FieldStartingLocation), a.StartingLocation)
	}
	if b.AccommodationType != a.AccommodationType {
		logging.LogFieldChange(m.Session, string(trip.FieldAccommodationType), string(a.AccommodationType))
	}
}

// noticeFor turns a form error into a short message
func noticeFor(err error) string {
	switch {
	case errors.Is(err, trip.ErrDateNotAllowed):
		return "That day is not available."
	case errors.Is(err, trip.ErrOverlayUnavailable):
		return "The calendar is turned off; pick dates inline."
	case errors.Is(err, trip.ErrStepNotImplemented):
		return "Booking is not available yet."
	default:
		return err.Error()
	}
}

// View renders the planner or its active overlay
func (m PlannerModel) View() string {
	switch m.Form.Overlay {
	case trip.OverlayInspiration:
		return RenderModal(m.renderInspirationModal(), m.Width, m.Height)
	case trip.OverlayInterests:
		return RenderModal(m.renderInterestsModal(), m.Width, m.Height)
	case trip.OverlayCalendar:
		return RenderModal(m.renderCalendarModal(), m.Width, m.Height)
	}

	return RenderApplicationContainer(m.renderForm(), m.Help.View(m.Keys), m.Width, m.Height)
}

// renderForm renders the form rows
func (m PlannerModel) renderForm() string {
	parts := []string{
		RenderTitle("Plan your eco trip"),
	}
	if m.Notice != "" {
		parts = append(parts, NoticeStyle.Render("⚠ "+m.Notice), "")
	}

	req := m.Form.Request

	parts = append(parts,
		m.renderRow(RowDestination, "Destination", m.DestinationInput.View()),
		m.renderRow(RowInspiration, "", RenderButton("💡 Need inspiration?", m.Cursor == RowInspiration)),
		m.renderRow(RowDates, "Dates", valueOr(formatRange(req.StartDate, req.EndDate), "Select dates")),
	)
	if m.RangePicking {
		parts = append(parts, InlineEditorStyle().Render(m.rangeGrid().View("Pick start, then end", true)))
	}

	parts = append(parts,
		m.renderRow(RowAdults, "Adults", fmt.Sprintf("‹ %d ›", req.Adults)),
		m.renderRow(RowChildren, "Children", fmt.Sprintf("‹ %d ›", req.Children)),
		m.renderRow(RowAccommodation, "Stay", m.renderAccommodationValue()),
	)
	if m.EditingAccommodation {
		parts = append(parts, InlineEditorStyle().Render(m.renderAccommodationOptions()))
	}

	parts = append(parts,
		m.renderRow(RowInterests, "Interests", valueOr(interestLabels(req.Interests), "Select interests")),
		m.renderRow(RowStartingLocation, "From", m.renderLocationValue()),
	)
	if m.LocationError != "" {
		parts = append(parts, "  "+ErrorTextStyle.Render(m.LocationError))
	}

	parts = append(parts,
		m.renderRow(RowUseLocation, "", RenderButton("📍 Use my current location", m.Cursor == RowUseLocation)),
		"",
		m.renderRow(RowSubmit, "", RenderButton("Plan my trip", m.Cursor == RowSubmit)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRow renders one row. Narrow terminals stack the label above the value.
func (m PlannerModel) renderRow(row Row, label, value string) string {
	selected := m.Cursor == row

	arrow := "  "
	labelStyle := LabelStyle
	if selected {
		arrow = "→ "
		labelStyle = SelectedLabelStyle
	}

	if label == "" {
		return arrow + value
	}
	if m.Viewport.Class() == trip.ViewportNarrow {
		return lipgloss.JoinVertical(lipgloss.Left, arrow+labelStyle.Render(label), "    "+value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, arrow, labelStyle.Width(labelWidth).Render(label), value)
}

func (m PlannerModel) renderAccommodationValue() string {
	a := m.Form.Request.AccommodationType
	if a == trip.AccommodationUnset {
		return PlaceholderStyle.Render(a.Label()) + " ▼"
	}
	return ValueStyle.Render(a.Label()) + " ▼"
}

func (m PlannerModel) renderAccommodationOptions() string {
	lines := make([]string, 0, len(trip.Accommodations()))
	for i, opt := range trip.Accommodations() {
		lines = append(lines, RenderMenuItem(opt.Label, i == m.AccommodationCursor))
	}
	return strings.Join(lines, "\n")
}

func (m PlannerModel) renderLocationValue() string {
	if m.LocationLoading {
		return m.Spinner.View() + " " + PlaceholderStyle.Render("Locating…")
	}
	return m.LocationInput.View()
}

// valueOr renders v, or placeholder when v is empty
func valueOr(v, placeholder string) string {
	if v == "" {
		return PlaceholderStyle.Render(placeholder)
	}
	return ValueStyle.Render(v)
}

// interestLabels joins the labels of the selected tags
func interestLabels(tags []trip.InterestTag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label())
	}
	return strings.Join(labels, ", ")
}
