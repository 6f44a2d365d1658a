package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/types"
)

// ButtonMode is active while the search button has focus.
// Pressing the button submits the same text the field would.
type ButtonMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewButtonMode(keys types.KeyMap, ti *textinput.Model) *ButtonMode {
	return &ButtonMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *ButtonMode) Name() string {
	return "button"
}

func (m *ButtonMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ButtonMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit), msg.String() == "q":
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Press):
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.SubmitAction{Text: text, Trigger: types.TriggerButton}}, true
	case key.Matches(msg, m.keys.SwitchFocus), msg.String() == "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true
	case key.Matches(msg, m.keys.Report), msg.String() == "v":
		if ctx.HasResult() {
			return []types.Action{types.OpenReportAction{}}, true
		}
		return nil, true
	case key.Matches(msg, m.keys.Help), msg.String() == "?":
		return []types.Action{types.OpenHelpAction{}}, true
	case key.Matches(msg, m.keys.ToggleHelp):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// Swallow everything else so stray keys do not edit the hidden field
	return nil, true
}
