package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the help line
type KeyMap struct {
	Submit      key.Binding
	SwitchFocus key.Binding
	Press       key.Binding
	Report      key.Binding
	Help        key.Binding
	ToggleHelp  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the bindings used by both modes
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus button/input"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "press button"),
		),
		Report: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "full report"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle key hints"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Report, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchFocus, k.Press},
		{k.Report, k.Help, k.ToggleHelp, k.Quit},
	}
}
