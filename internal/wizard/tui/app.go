package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/ecotrip/internal/logging"
	"github.com/muurk/ecotrip/internal/trip"
)

// demoDatesMsg assigns the demo date range on the first update cycle
type demoDatesMsg struct{}

// reviewKeyMap defines key bindings for the review screen
type reviewKeyMap struct {
	Book key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Book, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Book, k.Quit}}
}

// Config configures a wizard session
type Config struct {
	Options   trip.Options
	DemoDates bool

	// Resolver backs "use my current location". Nil means unsupported.
	Resolver    LocationResolver
	LocatorName string

	// Now anchors the date window. Defaults to time.Now.
	Now func() time.Time

	// Session identifies the session in logs. Generated when empty.
	Session string
}

// AppModel is the top-level coordinator model. The trip step decides which
// screen is shown.
type AppModel struct {
	Planner PlannerModel
	Session string

	// UI state
	Width  int
	Height int
	Notice string // Review screen message

	demoDates bool
	cancel    context.CancelFunc
	Quitting  bool

	// Help
	Help       help.Model
	ReviewKeys reviewKeyMap
}

// NewAppModel creates a new wizard session
func NewAppModel(cfg Config) AppModel {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	session := cfg.Session
	if session == "" {
		session = uuid.NewString()
	}

	ctx, cancel := context.WithCancel(context.Background())
	form := trip.NewForm(cfg.Options, now())

	return AppModel{
		Planner:   NewPlannerModel(ctx, form, session, cfg.Resolver, cfg.LocatorName),
		Session:   session,
		demoDates: cfg.DemoDates,
		cancel:    cancel,
		Help:      help.New(),
		ReviewKeys: reviewKeyMap{
			Book: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "book")),
			Quit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		},
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	logging.Info("Wizard session started", zap.String("session", m.Session))

	cmds := []tea.Cmd{m.Planner.Init()}
	if m.demoDates {
		cmds = append(cmds, func() tea.Msg { return demoDatesMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles all messages and routes them to the current screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	if m.Planner.Form.Step == trip.StepReview {
		return m.updateReview(msg)
	}

	updated, cmd := m.Planner.Update(msg)
	m.Planner = updated.(PlannerModel)

	if m.Planner.QuitRequested {
		return m.quit()
	}
	return m, cmd
}

// updateReview handles the review screen. Window and location messages still
// reach the planner so it stays consistent.
func (m AppModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		updated, cmd := m.Planner.Update(msg)
		m.Planner = updated.(PlannerModel)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.ReviewKeys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.ReviewKeys.Book):
		if err := m.Planner.Form.Submit(); err != nil {
			m.Notice = noticeFor(err)
			logging.Debug("Submit past last step", zap.String("session", m.Session))
		}
	}
	return m, nil
}

// quit cancels outstanding work and exits
func (m AppModel) quit() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.Quitting = true
	logging.Info("Wizard session ended",
		zap.String("session", m.Session),
		zap.String("step", m.Planner.Form.Step.String()))
	return m, tea.Quit
}

// View renders the current screen
func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}
	if m.Planner.Form.Step == trip.StepReview {
		return RenderApplicationContainer(m.renderReview(), m.Help.View(m.ReviewKeys), m.Width, m.Height)
	}
	return m.Planner.View()
}

// Request returns the trip request as currently entered
func (m AppModel) Request() trip.Request {
	return m.Planner.Form.Request
}

// Reviewed reports whether the user reached the review step
func (m AppModel) Reviewed() bool {
	return m.Planner.Form.Step == trip.StepReview
}
