package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/earnings"
	"github.com/alexanderramin/flightlog/internal/flighttime"
)

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := flighttime.ParseTimeOfDay(s); err != nil {
		return fmt.Errorf("use HHmm, e.g. 0800")
	}
	return nil
}

// newLogFormView creates the wizard for logging a new flight leg. It shows a
// live duration/earnings preview as the times are typed and refuses to create
// a record whose duration would be zero.
func newLogFormView(app *App) View {
	today := time.Now().Format(domain.DateLayout)

	depDate := today
	arrDate := today
	var depTime, arrTime string
	var longHaul bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Departure date").
				Placeholder(today).
				Value(&depDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Departure time (HHmm)").
				Placeholder("0800").
				Value(&depTime).
				Validate(validateClock),
			huh.NewInput().
				Title("Arrival date").
				Placeholder(today).
				Value(&arrDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Arrival time (HHmm)").
				Placeholder("2020").
				Value(&arrTime).
				Validate(validateClock),
			huh.NewConfirm().
				Title("Long-haul leg?").
				Description("Reports 10-24h legs as a flat 24h").
				Value(&longHaul),
		),
	).WithTheme(flightHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			minutes := flighttime.ComputeDurationMinutes(depDate, depTime, arrDate, arrTime)
			if minutes <= 0 {
				return statusMsg{text: formatter.StyleRed.Render("Not logged: arrival must be after departure.")}
			}

			mult := app.Store.Multipliers()
			var rec domain.FlightLog
			if longHaul {
				rec = app.Store.AddAdjustedLog(context.Background(), depDate, arrDate, depTime, arrTime, mult.X, mult.Y)
			} else {
				rec = app.Store.AddLog(context.Background(), depDate, arrDate, depTime, arrTime, mult.X, mult.Y)
			}
			return statusMsg{text: formatter.StyleGreen.Render(
				fmt.Sprintf("Flight logged: %s", flighttime.FormatMinutes(rec.DurationMinutes)))}
		}
	}

	wv := newWizardView("New Flight", form, done)
	wv.preview = func() string {
		minutes := flighttime.ComputeDurationMinutes(depDate, depTime, arrDate, arrTime)
		if minutes <= 0 {
			return ""
		}
		mult := app.Store.Multipliers()
		d := earnings.Compute(minutes, mult.X, mult.Y)
		return formatter.RenderBox("", fmt.Sprintf(
			"Flight time  %s\nAmount X     %s\nAmount Y     %s",
			formatter.StyleIndigo.Render(flighttime.FormatMinutes(minutes)),
			formatter.StylePurple.Render(formatter.FormatAmount(d.AmountX)),
			formatter.StylePink.Render(formatter.FormatAmount(d.AmountY))))
	}
	return wv
}

// newRatesFormView creates the wizard for editing the default rate pair.
func newRatesFormView(app *App) View {
	mult := app.Store.Multipliers()
	x := fmt.Sprintf("%g", mult.X)
	y := fmt.Sprintf("%g", mult.Y)

	validateRate := func(s string) error {
		var v float64
		if _, err := fmt.Sscanf(s, "%g", &v); err != nil {
			return fmt.Errorf("enter a number")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rate X").
				Description("Applied to decimal flight hours").
				Value(&x).
				Validate(validateRate),
			huh.NewInput().
				Title("Rate Y").
				Description("Applied to the rounded amount X").
				Value(&y).
				Validate(validateRate),
		),
	).WithTheme(flightHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg {
			var fx, fy float64
			if _, err := fmt.Sscanf(x, "%g", &fx); err != nil {
				return statusMsg{text: formatter.StyleRed.Render("Rates unchanged: " + err.Error())}
			}
			if _, err := fmt.Sscanf(y, "%g", &fy); err != nil {
				return statusMsg{text: formatter.StyleRed.Render("Rates unchanged: " + err.Error())}
			}
			app.Store.SetMultipliers(context.Background(), fx, fy)
			return statusMsg{text: formatter.StyleGreen.Render(
				fmt.Sprintf("Rates set to %.2f / %.2f for new flights.", fx, fy))}
		}
	}

	return newWizardView("Rates", form, done)
}
