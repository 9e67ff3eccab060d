package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ecotrip/internal/version"
)

// Application branding constants
const (
	AppName = "ECOTRIP PLANNER"
	Tagline = "sustainable trips, planned in the terminal"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	labelWidth    = 18 // Wide layout label column
	minModalWidth = 36
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#2E8B57") // Forest green
	SecondaryColor = lipgloss.Color("#9ACD32") // Leaf green
	AccentColor    = lipgloss.Color("#4FB0C6") // Lagoon blue
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#2E8B57") // Same as primary
	HighlightColor = lipgloss.Color("#9ACD32") // Same as secondary
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	SelectedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// ModalStyle frames every overlay
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SubtleColor).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Calendar cells
	DayStyle         = lipgloss.NewStyle().Foreground(TextColor)
	DisabledDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	SelectedDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(SecondaryColor)
	InRangeDayStyle  = lipgloss.NewStyle().Foreground(AccentColor)
	CursorDayStyle   = lipgloss.NewStyle().Foreground(TextColor).Background(PrimaryColor).Bold(true)
	WeekdayStyle     = lipgloss.NewStyle().Foreground(SubtleColor)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderMenuItem renders a menu item with selection indicator
func RenderMenuItem(text string, selected bool) string {
	if selected {
		return SelectedMenuItemStyle.Render("→ " + text)
	}
	return MenuItemStyle.Render(text)
}

// RenderButton renders a button, highlighted when focused
func RenderButton(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(Tagline)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer is the wrapper for every screen: header, content
// and a context-sensitive footer inside one bordered full-screen panel.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	innerWidth := terminalWidth - 4 // Leave room for outer border
	if innerWidth < 1 {
		innerWidth = 1
	}

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(innerWidth).
		Padding(0, 1).
		Render(BuildHeaderContent())

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(innerWidth).
		Padding(0, 1).
		Render(BuildFooterContent(footerText))

	styledContent := lipgloss.NewStyle().
		Width(innerWidth).
		Padding(1, 1).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	height := terminalHeight - 2
	if height < 1 {
		height = 1
	}
	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(height).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// SafeModalWidth returns requestedWidth capped to what fits the terminal
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < minModalWidth {
		maxWidth = minModalWidth
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// RenderModal centers an overlay on a dimmed full-screen background
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// InlineEditorStyle returns styling for inline expanded editors
func InlineEditorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(PrimaryColor).
		Padding(0, 1)
}
