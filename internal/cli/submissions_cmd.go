package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/spf13/cobra"
)

func newSubmissionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submissions",
		Aliases: []string{"subs"},
		Short:   "Show past case submissions",
	}
	cmd.AddCommand(newSubmissionsListCmd(app), newSubmissionsShowCmd(app))
	return cmd
}

func newSubmissionsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			ctx, cancel := app.requestContext()
			defer cancel()

			subs, err := app.Submissions.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing submissions: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubmissionList(subs, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of submissions to show")

	return cmd
}

func newSubmissionsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one submission with its payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.requestContext()
			defer cancel()

			sub, err := app.Submissions.GetByID(ctx, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("submission %s not found", args[0])
			}
			if err != nil {
				return fmt.Errorf("loading submission: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSubmissionDetail(sub, app.now()))
			return nil
		},
	}
}
