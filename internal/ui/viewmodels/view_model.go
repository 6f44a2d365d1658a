package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"weathergrip/internal/domain"
	inputtypes "weathergrip/internal/ui/input/types"
	"weathergrip/internal/ui/logic"
	"weathergrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	unit      logic.TemperatureUnit
	width     int
	height    int
	help      help.Model
	keys      inputtypes.KeyMap
	showHelp  bool
	textInput textinput.Model
	mode      inputtypes.Mode
	spinner   string
}

// NewViewModel creates a new view model
func NewViewModel(unit logic.TemperatureUnit, keys inputtypes.KeyMap, showHelp bool) *ViewModel {
	return &ViewModel{
		unit:     unit,
		help:     help.New(),
		keys:     keys,
		showHelp: showHelp,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// ToggleHelp flips between the short hint and the key bindings line
func (vm *ViewModel) ToggleHelp() {
	vm.showHelp = !vm.showHelp
}

// ShowHelp reports whether the key bindings line is shown
func (vm *ViewModel) ShowHelp() bool {
	return vm.showHelp
}

// UpdateInput records the text field and which control has focus
func (vm *ViewModel) UpdateInput(ti textinput.Model, mode inputtypes.Mode) {
	vm.textInput = ti
	vm.mode = mode
}

// SetSpinner sets the current loading indicator frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// Unit returns the temperature unit used for display
func (vm *ViewModel) Unit() logic.TemperatureUnit {
	return vm.unit
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s domain.InteractionState) views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Phase:         s.Phase,
		Query:         s.Query,
		TextInput:     vm.textInput.View(),
		InputFocused:  vm.mode == inputtypes.ModeInput,
		ButtonFocused: vm.mode == inputtypes.ModeButton,
		ShowHelp:      vm.showHelp,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}

	switch s.Phase {
	case domain.PhaseLoading:
		vs.Spinner = vm.spinner
	case domain.PhaseSuccess:
		vs.Fields = logic.BuildResultFields(s.Snapshot, vm.unit)
	case domain.PhaseFailure:
		vs.Message = s.Message
	}

	return vs
}
