package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorBorder  = lipgloss.Color("#2a3850")
	colorMuted   = lipgloss.Color("#6b7280")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Confirm  lipgloss.Style
	Badge    lipgloss.Style
	Selector lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Label:    lipgloss.NewStyle().Width(12),
		Focused:  lipgloss.NewStyle().Foreground(colorAccent),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Success:  lipgloss.NewStyle().Foreground(colorAccent),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(1, 2),
		Confirm:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorWarning).Padding(1, 2),
		Badge:    lipgloss.NewStyle().PaddingRight(1),
		Selector: lipgloss.NewStyle().Width(8).Align(lipgloss.Center),
	}
}
