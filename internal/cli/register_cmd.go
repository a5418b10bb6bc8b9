package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Start the case registration wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("register needs an interactive terminal")
			}
			return runWizard(app)
		},
	}
}

// runWizard runs the TUI until the user quits.
func runWizard(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
