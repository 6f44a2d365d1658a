package types

// Trigger identifies which control submitted a search
type Trigger int

const (
	TriggerKey    Trigger = iota // enter in the text field
	TriggerButton                // the search button
)

func (t Trigger) String() string {
	if t == TriggerButton {
		return "button"
	}
	return "key"
}

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// SubmitAction asks for a search with the current text. Both triggers produce it.
type SubmitAction struct {
	Text    string
	Trigger Trigger
}

func (a SubmitAction) Type() string { return "submit" }

// Pager actions
type OpenReportAction struct{}

func (a OpenReportAction) Type() string { return "open_report" }

type OpenHelpAction struct{}

func (a OpenHelpAction) Type() string { return "open_help" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
