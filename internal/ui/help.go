package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "Search",
		entries: []helpEntry{
			{"enter", "Search for the typed location"},
			{"tab/shift+tab", "Move focus between the field and the button"},
			{"enter/space", "Press the Search button (button focused)"},
			{"esc", "Clear the field, or return focus to it"},
		},
	},
	{
		title: "Results",
		entries: []helpEntry{
			{"ctrl+o, v", "Open the full report (v needs button focus)"},
		},
	},
	{
		title: "Other",
		entries: []helpEntry{
			{"f1, ?", "Show this help (? needs button focus)"},
			{"ctrl+t", "Toggle key hints"},
			{"ctrl+c, q", "Quit (q needs button focus)"},
		},
	},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("weathergrip Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-14s", e.keys)), descStyle.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Locations: city names, postcodes, lat,long, or airport codes (e.g. iata:LHR)"))

	return help.String()
}
