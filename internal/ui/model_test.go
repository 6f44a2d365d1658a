package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathergrip/internal/config"
	"weathergrip/internal/domain"
	"weathergrip/internal/search"
	inputtypes "weathergrip/internal/ui/input/types"
)

var paris = domain.WeatherSnapshot{
	Name:          "Paris",
	Region:        "Ile-de-France",
	Country:       "France",
	LastUpdated:   "2024-11-30 14:15",
	ConditionText: "Partly cloudy",
	ConditionIcon: "https://cdn.example/icon.png",
	TempC:         21.4,
	FeelsLikeC:    20.6,
	VisKm:         10,
	Humidity:      64,
	WindKph:       13.7,
	WindDir:       "WSW",
	PressureMb:    1018,
	UV:            2.5,
	Cloud:         50,
	PrecipMm:      0.12,
	DewPointC:     14.3,
}

// stubFetcher answers from a table and counts calls
type stubFetcher struct {
	calls   []string
	answers map[string]domain.WeatherSnapshot
}

func (f *stubFetcher) FetchCurrentConditions(ctx context.Context, query string) (domain.WeatherSnapshot, error) {
	f.calls = append(f.calls, query)
	snap, ok := f.answers[query]
	if !ok {
		return domain.WeatherSnapshot{}, fmt.Errorf("%w: status 404", domain.ErrNetwork)
	}
	return snap, nil
}

func newTestModel(t *testing.T) (*Model, *stubFetcher) {
	t.Helper()
	f := &stubFetcher{answers: map[string]domain.WeatherSnapshot{"Paris": paris}}
	ctrl := search.NewController(f, nil)
	m := NewModel(context.Background(), config.DefaultConfig(), ctrl)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, f
}

// drain runs cmd and every command batched inside it, returning the messages.
// Only use it on commands that do not sleep.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func searchResults(msgs []tea.Msg) []searchResultMsg {
	var out []searchResultMsg
	for _, msg := range msgs {
		if r, ok := msg.(searchResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestEnterRunsSearchThroughCommand(t *testing.T) {
	m, f := newTestModel(t)
	m.inputHandler.SetValue("  Paris ")

	_, cmd := m.Update(key(tea.KeyEnter))

	// Loading is committed before the request runs
	assert.True(t, m.IsLoading())
	assert.Contains(t, m.View(), "Fetching weather for Paris")
	assert.Empty(t, f.calls)

	results := searchResults(drain(cmd))
	require.Len(t, results, 1)
	assert.Equal(t, []string{"Paris"}, f.calls)

	m.Update(results[0])
	state := m.controller.State()
	assert.Equal(t, domain.PhaseSuccess, state.Phase)

	view := m.View()
	assert.Contains(t, view, "21°C")
	assert.Contains(t, view, "https://cdn.example/icon.png")
	assert.NotContains(t, view, "Fetching weather for")
}

func TestButtonPressRunsSameSearch(t *testing.T) {
	m, f := newTestModel(t)
	m.inputHandler.SetValue("Paris")

	m.Update(key(tea.KeyTab))
	require.Equal(t, inputtypes.ModeButton, m.inputHandler.CurrentMode())

	_, cmd := m.Update(key(tea.KeyEnter))
	for _, r := range searchResults(drain(cmd)) {
		m.Update(r)
	}

	assert.Equal(t, []string{"Paris"}, f.calls)
	assert.True(t, m.HasResult())
}

func TestBlankSubmitShowsMessageAndRefocuses(t *testing.T) {
	m, f := newTestModel(t)
	m.inputHandler.SetValue("   ")
	m.Update(key(tea.KeyTab))

	_, cmd := m.Update(key(tea.KeyEnter))

	assert.Empty(t, searchResults(drain(cmd)))
	assert.Empty(t, f.calls)
	assert.Equal(t, inputtypes.ModeInput, m.inputHandler.CurrentMode())
	assert.True(t, m.inputHandler.TextInput().Focused())
	assert.Contains(t, m.View(), domain.MessageEmptyQuery)
	assert.False(t, m.controller.FocusRequested())
}

func TestFailureShowsCollapsedMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m.inputHandler.SetValue("Atlantis")

	_, cmd := m.Update(key(tea.KeyEnter))
	for _, r := range searchResults(drain(cmd)) {
		m.Update(r)
	}

	view := m.View()
	assert.Contains(t, view, domain.MessageFetchFailed)
	assert.NotContains(t, view, "404")
	assert.NotContains(t, view, "Fetching weather for")
	assert.Equal(t, domain.ErrorKindNetwork, m.controller.State().Kind)
}

func TestLateResultOfSupersededSearchIsDropped(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmdA := m.Update(submitMsg{text: "Atlantis"})
	_, cmdB := m.Update(submitMsg{text: "Paris"})

	resA := searchResults(drain(cmdA))
	resB := searchResults(drain(cmdB))
	require.Len(t, resA, 1)
	require.Len(t, resB, 1)

	m.Update(resB[0])
	m.Update(resA[0])

	state := m.controller.State()
	assert.Equal(t, domain.PhaseSuccess, state.Phase)
	assert.Equal(t, "Paris", state.Query)
}

func TestInitialQueryIsSubmittedOnStart(t *testing.T) {
	m, f := newTestModel(t)
	m.SetInitialQuery("Paris")
	assert.Equal(t, "Paris", m.inputHandler.TextInput().Value())

	var submits []submitMsg
	for _, msg := range drain(m.Init()) {
		if s, ok := msg.(submitMsg); ok {
			submits = append(submits, s)
		}
	}
	require.Len(t, submits, 1)

	_, cmd := m.Update(submits[0])
	for _, r := range searchResults(drain(cmd)) {
		m.Update(r)
	}
	assert.Equal(t, []string{"Paris"}, f.calls)
	assert.True(t, m.HasResult())
}

func TestSpinnerStopsWhenNotLoading(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)

	var quit bool
	for _, msg := range drain(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
		}
	}
	assert.True(t, quit)
}

func TestToggleHelpLine(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.viewModel.ShowHelp())

	m.Update(key(tea.KeyCtrlT))
	assert.False(t, m.viewModel.ShowHelp())
	assert.Contains(t, m.View(), "Press f1 for help")
}

func TestPagerWithoutProgramIsNoop(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key(tea.KeyF1))
	assert.Empty(t, drain(cmd))
}

func TestPauseHidesView(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	_, cmd := m.Update(key(tea.KeyCtrlC))
	assert.Nil(t, cmd)

	m.Update(resumeRenderingMsg{})
	assert.True(t, strings.Contains(m.View(), "weathergrip"))
}

func TestHelpContentListsBindings(t *testing.T) {
	content := NewHelpRenderer().RenderHelpContentPlain()
	assert.Contains(t, content, "weathergrip Help")
	assert.Contains(t, content, "tab/shift+tab")
	assert.Contains(t, content, "ctrl+o, v")
}
