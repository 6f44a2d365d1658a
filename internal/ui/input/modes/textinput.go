package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/types"
)

// TextInputMode is active while the location field has focus
type TextInputMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewTextInputMode(keys types.KeyMap, ti *textinput.Model) *TextInputMode {
	return &TextInputMode{
		keys:      keys,
		textInput: ti,
	}
}

func (m *TextInputMode) Name() string {
	return "input"
}

func (m *TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitAction{Text: m.value(), Trigger: types.TriggerKey}}, true
	case key.Matches(msg, m.keys.SwitchFocus):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeButton}}, true
	case key.Matches(msg, m.keys.Report):
		if ctx.HasResult() {
			return []types.Action{types.OpenReportAction{}}, true
		}
		return nil, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.OpenHelpAction{}}, true
	case key.Matches(msg, m.keys.ToggleHelp):
		return []types.Action{types.ToggleHelpAction{}}, true
	case msg.String() == "esc":
		return []types.Action{types.ClearTextAction{}}, true
	default:
		// Let the handler feed the key to the text input
		return nil, false
	}
}

func (m *TextInputMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}
