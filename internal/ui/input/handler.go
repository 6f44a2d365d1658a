package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/ui/input/modes"
	"weathergrip/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Focus()

	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeInput,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeInput] = modes.NewTextInputMode(keys, h.textInput)
	h.modes[types.ModeButton] = modes.NewButtonMode(keys, h.textInput)

	return h
}

// HandleKey routes a key to the active mode and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.changeMode(a.Mode, ctx)...)
			if h.currentMode == types.ModeInput {
				cmd = textinput.Blink
			}
		case types.ClearTextAction:
			h.textInput.Reset()
			allActions = append(allActions, types.UpdateTextAction{Text: ""})
		default:
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in the input mode edit the field
	if !consumed && h.currentMode == types.ModeInput {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// FocusInput moves focus back to the text field
func (h *Handler) FocusInput(ctx types.Context) tea.Cmd {
	if h.currentMode != types.ModeInput {
		h.changeMode(types.ModeInput, ctx)
	}
	h.textInput.Focus()
	return textinput.Blink
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// SetValue replaces the field contents
func (h *Handler) SetValue(v string) {
	h.textInput.SetValue(v)
	h.textInput.CursorEnd()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode == types.ModeInput {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
