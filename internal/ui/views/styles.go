package views

import (
	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/ui/logic"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Panel         lipgloss.Style
	Location      lipgloss.Style
	Temperature   lipgloss.Style
	Link          lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:   lipgloss.NewStyle().Faint(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(36),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			Width(36),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(1, 1, 0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Padding(1, 1, 0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			MarginTop(1).
			BorderForeground(lipgloss.Color("241")),
		Location:      lipgloss.NewStyle().Bold(true),
		Temperature:   lipgloss.NewStyle().Bold(true),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}

// ConditionColor returns the accent color for a condition class
func ConditionColor(class logic.ConditionClass) string {
	switch class {
	case logic.ConditionSunny:
		return "220" // yellow
	case logic.ConditionCloudy:
		return "250" // light gray
	case logic.ConditionRainy:
		return "33" // blue
	case logic.ConditionSnowy:
		return "195" // pale cyan
	case logic.ConditionStormy:
		return "135" // purple
	default:
		return "99"
	}
}
