package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/domain"
	"weathergrip/internal/ui/logic"
)

const buttonLabel = "[ Search ]"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Phase         domain.Phase
	Query         string
	Message       string
	Fields        logic.ResultFields
	TextInput     string
	InputFocused  bool
	ButtonFocused bool
	Spinner       string
	ShowHelp      bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("weathergrip"))
	content.WriteString("\n")
	content.WriteString(r.renderForm(state))
	content.WriteString("\n")

	// The phase selects at most one panel
	if panel := r.RenderPanel(state); panel != "" {
		content.WriteString(panel)
		content.WriteString("\n")
	}

	helpText := r.renderHelpLine(state)

	// Push the help line to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - lipgloss.Height(helpText); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(helpText)

	return r.styles.Main.Render(content.String())
}

// RenderPanel renders the loading, result or error panel for the current phase.
// Idle renders nothing.
func (r *Renderer) RenderPanel(state ViewState) string {
	switch state.Phase {
	case domain.PhaseLoading:
		return r.renderLoading(state)
	case domain.PhaseSuccess:
		return r.renderResult(state)
	case domain.PhaseFailure:
		return r.renderError(state)
	default:
		return ""
	}
}

func (r *Renderer) renderForm(state ViewState) string {
	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocused
	}
	buttonStyle := r.styles.Button
	if state.ButtonFocused {
		buttonStyle = r.styles.ButtonFocused
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		inputStyle.Render(state.TextInput),
		buttonStyle.Render(buttonLabel),
	)
}

func (r *Renderer) renderLoading(state ViewState) string {
	text := fmt.Sprintf("%s Fetching weather for %s...", state.Spinner, state.Query)
	return r.styles.Panel.Render(r.styles.StatusLoading.Render(strings.TrimSpace(text)))
}

func (r *Renderer) renderError(state ViewState) string {
	panel := r.styles.Panel.BorderForeground(lipgloss.Color("203"))
	return panel.Render(r.styles.StatusError.Render(state.Message))
}

func (r *Renderer) renderResult(state ViewState) string {
	f := state.Fields
	accent := lipgloss.Color(ConditionColor(f.Class))

	var b strings.Builder
	b.WriteString(r.styles.Location.Foreground(accent).Render(f.LocationName))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(f.LocationDetails))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(f.LastUpdated))
	b.WriteString("\n\n")

	b.WriteString(r.styles.Temperature.Foreground(accent).Render(f.Temperature))
	b.WriteString("  ")
	b.WriteString(r.styles.Value.Render(f.Condition))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", r.styles.Label.Render("Icon:"), r.styles.Link.Render(f.IconURL)))
	b.WriteString("\n")

	rows := [][2]string{
		{"Feels like", f.FeelsLike},
		{"Visibility", f.Visibility},
		{"Humidity", f.Humidity},
		{"Wind", f.Wind},
		{"Pressure", f.Pressure},
		{"UV index", f.UVIndex},
		{"Cloud cover", f.CloudCover},
		{"Precipitation", f.Precipitation},
		{"Dew point", f.DewPoint},
	}
	for i, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s", r.styles.Label.Render(fmt.Sprintf("%-14s", row[0])), r.styles.Value.Render(row[1])))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return r.styles.Panel.BorderForeground(accent).Render(b.String())
}

func (r *Renderer) renderHelpLine(state ViewState) string {
	if !state.ShowHelp || state.Keys == nil {
		return r.styles.Help.Render("Press f1 for help")
	}
	return state.HelpModel.View(state.Keys)
}
