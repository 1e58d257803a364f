package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
	"github.com/alexanderramin/flightlog/internal/earnings"
	"github.com/alexanderramin/flightlog/internal/flighttime"
	"github.com/alexanderramin/flightlog/internal/stats"
)

// statsView shows per-month totals for a selectable year, with a drill-down
// into the individual legs of a month.
type statsView struct {
	app     *App
	years   []int
	yearIdx int
	totals  []stats.MonthlyTotal
	cursor  int

	// detail, when non-zero, is the month currently drilled into.
	detail time.Month
}

func newStatsView(app *App) *statsView {
	v := &statsView{
		app:   app,
		years: stats.Years(app.Store.Logs(), time.Now),
	}
	v.reload()
	return v
}

func (v *statsView) reload() {
	v.totals = stats.MonthlyTotals(v.app.Store.Logs(), v.year())
	if v.cursor >= len(v.totals) {
		v.cursor = 0
	}
}

func (v *statsView) year() int { return v.years[v.yearIdx] }

func (v *statsView) ID() ViewID { return ViewStats }

func (v *statsView) Title() string {
	if v.detail != 0 {
		return fmt.Sprintf("Stats · %s %d", v.detail, v.year())
	}
	return "Stats"
}

func (v *statsView) ShortHelp() []key.Binding {
	if v.detail != 0 {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "year")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "month detail")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *statsView) Init() tea.Cmd { return nil }

func (v *statsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.detail != 0 {
		switch keyMsg.String() {
		case "esc", "q":
			v.detail = 0
		}
		return v, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if v.yearIdx < len(v.years)-1 {
			v.yearIdx++ // years are sorted descending
			v.reload()
		}
	case "right", "l":
		if v.yearIdx > 0 {
			v.yearIdx--
			v.reload()
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.totals)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(v.totals) {
			v.detail = v.totals[v.cursor].Month
		}
	case "esc", "q":
		return v, popView
	}
	return v, nil
}

func (v *statsView) View() string {
	if v.detail != 0 {
		return v.viewDetail()
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Monthly stats · %d", v.year())))
	b.WriteString("\n")

	if len(v.totals) == 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("No flights logged in %d.", v.year())))
		return b.String()
	}

	for i, m := range v.totals {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleIndigo.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%-10s %2d flights  %s  %s / %s\n",
			prefix,
			m.Month.String(),
			m.Flights,
			formatter.StyleIndigo.Render(flighttime.FormatMinutes(m.Minutes)),
			formatter.StylePurple.Render(formatter.FormatAmount(m.AmountX)),
			formatter.StylePink.Render(formatter.FormatAmount(m.AmountY))))
	}
	return b.String()
}

func (v *statsView) viewDetail() string {
	legs := stats.MonthLogs(v.app.Store.Logs(), v.year(), v.detail)

	var minutes int
	for _, l := range legs {
		minutes += l.DurationMinutes
	}

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("%s %d", v.detail, v.year())))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("Total: %s (%s hrs)",
		flighttime.FormatMinutes(minutes), flighttime.FormatDecimalHours(minutes))))
	b.WriteString("\n\n")

	for _, l := range legs {
		d := earnings.Compute(l.DurationMinutes, l.MultiplierX, l.MultiplierY)
		b.WriteString(fmt.Sprintf("%s  %s—%s  %s\n",
			formatter.Bold(formatter.FormatDate(l.DepartureDate)),
			l.DepartureTime, l.ArrivalTime,
			formatter.StyleIndigo.Render(flighttime.FormatMinutes(l.DurationMinutes))))
		b.WriteString(formatter.Dim(fmt.Sprintf("    X (%.2f): %s    Y (%.2f): %s\n",
			l.MultiplierX, formatter.FormatAmount(d.AmountX),
			l.MultiplierY, formatter.FormatAmount(d.AmountY))))
	}
	return b.String()
}
