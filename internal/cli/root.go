package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/flightlog/internal/store"
)

// App holds what the CLI commands and the TUI need.
type App struct {
	Store *store.Store

	// IsInteractive reports whether stdin is a terminal; when it is, a bare
	// "flightlog" invocation starts the TUI instead of printing help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "flightlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "flightlog",
		Short:         "Personal flight hours logbook",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newRemoveCmd(app),
		newRatesCmd(app),
		newStatsCmd(app),
		newUICmd(app),
	)

	return root
}

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Start the interactive logbook UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}
