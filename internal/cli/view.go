package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewMenu ViewID = iota
	ViewForm
	ViewHistory
	ViewStats
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// Navigation and status messages exchanged between views and the app model.
type (
	pushViewMsg struct{ view View }
	popViewMsg  struct{}
	statusMsg   struct{ text string }

	// wizardCompleteMsg pops the wizard and then runs nextCmd.
	wizardCompleteMsg struct{ nextCmd tea.Cmd }
)

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Msg { return popViewMsg{} }

func showStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
