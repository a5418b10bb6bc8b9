package cli

import (
	"time"

	"github.com/alexanderramin/casereg/internal/service"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	References  service.ReferenceService
	Submissions service.SubmissionService

	// DispatchObserver receives every wizard dispatch. Nil means no-op.
	DispatchObserver wizard.DispatchObserver

	ReferenceTTL   time.Duration
	RequestTimeout time.Duration

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command prints help instead of starting the wizard.
	IsInteractive func() bool

	// Now is the clock used for display. Nil means time.Now.
	Now func() time.Time

	// HistoryPath is where the command bar keeps its history. Empty keeps
	// history in memory only.
	HistoryPath string
}

// NewRootCmd creates the top-level "casereg" command and registers all
// subcommands against the provided App. Run bare in a terminal, it starts
// the registration wizard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "casereg",
		Short:         "Register prosecution cases with the case gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runWizard(app)
		},
	}

	root.AddCommand(
		newRegisterCmd(app),
		newReferenceCmd(app),
		newSubmissionsCmd(app),
		newRouteCmd(),
		newStubCmd(),
	)

	return root
}
