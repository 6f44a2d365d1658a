package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weathergrip/internal/config"
	"weathergrip/internal/search"
	"weathergrip/internal/ui/input"
	inputtypes "weathergrip/internal/ui/input/types"
	"weathergrip/internal/ui/logic"
	"weathergrip/internal/ui/viewmodels"
	"weathergrip/internal/ui/views"
)

const inputPlaceholder = "Enter a city, postcode or lat,long"

// Model represents the UI state
type Model struct {
	ctx        context.Context
	config     *config.Config
	controller *search.Controller

	// UI-specific state; the interaction state lives in the controller
	width        int
	height       int
	spinner      spinner.Model
	inPagerMode  bool // tracks if we're currently in pager mode
	initialQuery string

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. ctx bounds every request the model issues.
func NewModel(ctx context.Context, cfg *config.Config, controller *search.Controller) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	inputHandler := input.New(inputPlaceholder)

	return &Model{
		ctx:          ctx,
		config:       cfg,
		controller:   controller,
		spinner:      s,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(logic.UnitForSystem(cfg.UISettings.Units), inputHandler.Keys(), cfg.UISettings.ShowHelp),
		inputHandler: inputHandler,
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SetInitialQuery fills the field with q and searches for it on start
func (m *Model) SetInitialQuery(q string) {
	m.initialQuery = q
	m.inputHandler.SetValue(q)
}

// HasResult implements inputtypes.Context
func (m *Model) HasResult() bool {
	return m.controller.State().ResultVisible()
}

// IsLoading implements inputtypes.Context
func (m *Model) IsLoading() bool {
	return m.controller.State().LoadingVisible()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inputHandler.FocusInput(m)}
	if m.initialQuery != "" {
		q := m.initialQuery
		cmds = append(cmds, func() tea.Msg { return submitMsg{text: q} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.UpdateInput(*m.inputHandler.TextInput(), m.inputHandler.CurrentMode())
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState(m.controller.State()))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SubmitAction:
		log.Printf("Submit via %s: %q", a.Trigger, a.Text)
		return m.submit(a.Text)

	case inputtypes.OpenReportAction:
		return m.openReport()

	case inputtypes.OpenHelpAction:
		return m.openPager(m.helpRenderer.RenderHelpContentPlain(), func(err error) tea.Msg {
			return helpPagerMsg{err: err}
		})

	case inputtypes.ToggleHelpAction:
		m.viewModel.ToggleHelp()
		return nil

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		// UpdateTextAction: the handler already changed the field
		return nil
	}
}

// submit starts a search for text. The request runs as a command and its
// answer comes back as a searchResultMsg.
func (m *Model) submit(text string) tea.Cmd {
	req, ok := m.controller.Begin(text)
	if !ok {
		if m.controller.ConsumeFocusRequest() {
			return m.inputHandler.FocusInput(m)
		}
		return nil
	}

	return tea.Batch(m.spinner.Tick, m.fetch(req))
}

// fetch returns a command that calls the data source for req
func (m *Model) fetch(req search.Request) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg{result: m.controller.Fetch(m.ctx, req)}
	}
}

// openReport shows the current result in the pager
func (m *Model) openReport() tea.Cmd {
	state := m.controller.State()
	if !state.ResultVisible() {
		return nil
	}
	content := m.renderer.RenderReport(logic.BuildResultFields(state.Snapshot, m.viewModel.Unit()))
	return m.openPager(content, func(err error) tea.Msg {
		return reportPagerMsg{err: err}
	})
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(content string, done func(error) tea.Msg) tea.Cmd {
	if m.program == nil {
		log.Printf("Pager unavailable: program not set")
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return done(err)
	}
}

// handleNonKeyboardMsg handles all non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		return m, m.submit(msg.text)

	case searchResultMsg:
		m.controller.Complete(msg.result)
		return m, nil

	case spinner.TickMsg:
		// Stop the tick loop once nothing is loading
		if !m.IsLoading() || m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reportPagerMsg:
		if msg.err != nil {
			log.Printf("Report pager failed: %v", msg.err)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.IsLoading() {
			return m, m.spinner.Tick
		}
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}
