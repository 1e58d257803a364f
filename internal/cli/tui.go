package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the interactive logbook UI and blocks until it exits.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
