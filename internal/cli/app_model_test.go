package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubView is a minimal View used to exercise appModel navigation without
// dragging real screens into the test.
type stubView struct {
	id       ViewID
	title    string
	viewText string
	initCmd  tea.Cmd
	seen     []tea.Msg
}

func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Init() tea.Cmd            { return v.initCmd }
func (v *stubView) View() string             { return v.viewText }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.seen = append(v.seen, msg)
	return v, nil
}

func TestNewAppModelStartsAtMenu(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewMenu, m.activeView().ID())
}

func TestAppModel_PushAndPop(t *testing.T) {
	m := newAppModel(testApp(t))
	stub := &stubView{id: ViewHistory, title: "History", viewText: "stub"}

	updated, cmd := m.Update(pushViewMsg{view: stub})
	m = updated.(appModel)
	require.Len(t, m.viewStack, 2)
	assert.Same(t, stub, m.activeView())
	assert.Nil(t, cmd)

	updated, _ = m.Update(popViewMsg{})
	m = updated.(appModel)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewMenu, m.activeView().ID())

	// The menu is the floor of the stack.
	updated, _ = m.Update(popViewMsg{})
	m = updated.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_PushRunsViewInit(t *testing.T) {
	m := newAppModel(testApp(t))
	ran := false
	stub := &stubView{id: ViewStats, initCmd: func() tea.Msg { ran = true; return nil }}

	_, cmd := m.Update(pushViewMsg{view: stub})
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, ran)
}

func TestAppModel_WizardCompletePopsAndRunsNext(t *testing.T) {
	m := newAppModel(testApp(t))
	updated, _ := m.Update(pushViewMsg{view: &stubView{id: ViewForm, title: "Log flight"}})
	m = updated.(appModel)

	updated, cmd := m.Update(wizardCompleteMsg{nextCmd: showStatus("Flight logged.")})
	m = updated.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(appModel)
	assert.Equal(t, "Flight logged.", m.status)
}

func TestAppModel_StatusClearedOnKeypress(t *testing.T) {
	m := newAppModel(testApp(t))

	updated, _ := m.Update(statusMsg{text: "Flight logged."})
	m = updated.(appModel)
	assert.Contains(t, m.View(), "Flight logged.")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(appModel)
	assert.NotContains(t, m.View(), "Flight logged.")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testApp(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(appModel)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestAppModel_WindowSizeForwardedToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	stub := &stubView{id: ViewHistory}
	updated, _ := m.Update(pushViewMsg{view: stub})
	m = updated.(appModel)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Len(t, stub.seen, 1)
	assert.Equal(t, tea.WindowSizeMsg{Width: 120, Height: 40}, stub.seen[0])
}

func TestAppModel_BreadcrumbShowsStack(t *testing.T) {
	m := newAppModel(testApp(t))
	updated, _ := m.Update(pushViewMsg{view: &stubView{id: ViewStats, title: "Stats", viewText: "stub"}})
	m = updated.(appModel)

	out := m.View()
	assert.Contains(t, out, "FLIGHTLOG")
	assert.Contains(t, out, "Stats")
	assert.Contains(t, out, "ctrl+c quit")
}
