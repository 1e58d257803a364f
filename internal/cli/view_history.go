package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
	"github.com/alexanderramin/flightlog/internal/domain"
)

// historyView lists logged flights newest first, with delete-under-cursor
// behind an explicit confirm step.
type historyView struct {
	app    *App
	logs   []domain.FlightLog
	cursor int

	// confirming is the record pending delete confirmation, nil otherwise.
	confirming *domain.FlightLog
}

func newHistoryView(app *App) *historyView {
	return &historyView{app: app, logs: app.Store.Logs()}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	if v.confirming != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.confirming != nil {
		return v.updateConfirm(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.logs)-1 {
			v.cursor++
		}
	case "d", "x":
		if v.cursor < len(v.logs) {
			rec := v.logs[v.cursor]
			v.confirming = &rec
		}
	case "esc", "q":
		return v, popView
	}
	return v, nil
}

func (v *historyView) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		rec := *v.confirming
		v.confirming = nil
		v.app.Store.RemoveLog(context.Background(), rec.ID)
		v.logs = v.app.Store.Logs()
		if v.cursor >= len(v.logs) && v.cursor > 0 {
			v.cursor--
		}
		return v, showStatus(formatter.Dim("Flight log deleted."))
	case "n", "esc":
		v.confirming = nil
	}
	return v, nil
}

func (v *historyView) View() string {
	if len(v.logs) == 0 {
		return formatter.Dim("No flights logged yet.")
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Recent flights (%d)", len(v.logs))))
	b.WriteString("\n")
	for i, l := range v.logs {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleIndigo.Render("› ")
		}
		b.WriteString(prefix + formatter.LegSummary(l) + "\n")
	}

	if v.confirming != nil {
		b.WriteString("\n")
		b.WriteString(formatter.RenderBox("Delete log?",
			fmt.Sprintf("%s %s—%s\nThis cannot be undone.  %s / %s",
				formatter.FormatDate(v.confirming.DepartureDate),
				v.confirming.DepartureTime,
				v.confirming.ArrivalTime,
				formatter.StyleRed.Render("y delete"),
				formatter.Dim("n keep"))))
	}
	return b.String()
}
