package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It manages a view stack
// with the main menu at the bottom and a one-line status bar.
type appModel struct {
	app       *App
	viewStack []View
	status    string
	width     int
	height    int
	quitting  bool
}

func newAppModel(app *App) appModel {
	return appModel{
		app:       app,
		viewStack: []View{newMenuView(app)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = ""
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case pushViewMsg:
		m.status = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case statusMsg:
		m.status = msg.text
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.breadcrumb())
	b.WriteString("\n\n")
	if v := m.activeView(); v != nil {
		b.WriteString(v.View())
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine())
	return b.String()
}

func (m appModel) breadcrumb() string {
	parts := []string{formatter.StyleHeader.Render("✈ FLIGHTLOG")}
	for _, v := range m.viewStack[1:] {
		parts = append(parts, formatter.StyleFg.Render(v.Title()))
	}
	return strings.Join(parts, formatter.Dim(" › "))
}

func (m appModel) helpLine() string {
	v := m.activeView()
	if v == nil {
		return ""
	}
	hints := make([]string, 0, len(v.ShortHelp())+1)
	for _, b := range v.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	hints = append(hints, "ctrl+c quit")
	return formatter.Dim(strings.Join(hints, "  ·  "))
}
