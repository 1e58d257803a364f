package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
	"github.com/alexanderramin/flightlog/internal/flighttime"
)

// menuView is the home screen: a cursor menu over the main actions plus a
// small summary of the logbook.
type menuView struct {
	app    *App
	cursor int
}

type menuItem struct {
	label string
	push  func(app *App) View
}

var menuItems = []menuItem{
	{label: "Log a flight", push: func(app *App) View { return newLogFormView(app) }},
	{label: "History", push: func(app *App) View { return newHistoryView(app) }},
	{label: "Monthly stats", push: func(app *App) View { return newStatsView(app) }},
	{label: "Rates", push: func(app *App) View { return newRatesFormView(app) }},
}

func newMenuView(app *App) *menuView {
	return &menuView{app: app}
}

func (v *menuView) ID() ViewID    { return ViewMenu }
func (v *menuView) Title() string { return "Home" }

func (v *menuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *menuView) Init() tea.Cmd { return nil }

func (v *menuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(menuItems)-1 {
			v.cursor++
		}
	case "enter":
		return v, pushView(menuItems[v.cursor].push(v.app))
	case "q", "esc":
		return v, tea.Quit
	}
	return v, nil
}

func (v *menuView) View() string {
	var b strings.Builder

	logs := v.app.Store.Logs()
	var minutes int
	for _, l := range logs {
		minutes += l.DurationMinutes
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("%d flights logged · %s total", len(logs), flighttime.FormatMinutes(minutes))))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		if i == v.cursor {
			b.WriteString(formatter.StyleIndigo.Render("› " + item.label))
		} else {
			b.WriteString(formatter.StyleFg.Render("  " + item.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
