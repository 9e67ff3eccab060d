package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ecotrip/internal/trip"
)

// renderReview renders the read-only summary of the request
func (m AppModel) renderReview() string {
	req := m.Planner.Form.Request

	dates := formatRange(req.StartDate, req.EndDate)
	if n := req.Nights(); n > 0 {
		dates = fmt.Sprintf("%s (%d nights)", dates, n)
	}

	travelers := fmt.Sprintf("%d adult", req.Adults)
	if req.Adults != 1 {
		travelers += "s"
	}
	if req.Children > 0 {
		travelers += fmt.Sprintf(", %d child", req.Children)
		if req.Children != 1 {
			travelers += "ren"
		}
	}

	stay := ""
	if req.AccommodationType != trip.AccommodationUnset {
		stay = req.AccommodationType.Label()
	}

	rows := []struct{ label, value string }{
		{"Destination", req.Destination},
		{"Dates", dates},
		{"Travelers", travelers},
		{"Stay", stay},
		{"Interests", interestLabels(req.Interests)},
		{"From", req.StartingLocation},
	}

	lines := []string{
		RenderTitle("Review your trip"),
		RenderSubtitle("Check the details before booking"),
		"",
	}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			"  ",
			LabelStyle.Width(labelWidth).Render(r.label),
			valueOr(r.value, "-"),
		))
	}

	lines = append(lines, "", SuccessBoxStyle.Render("✓ Trip details saved"))
	if m.Notice != "" {
		lines = append(lines, "", NoticeStyle.Render("⚠ "+m.Notice))
	}

	return strings.Join(lines, "\n")
}
