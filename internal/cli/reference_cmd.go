package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/service"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newReferenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reference",
		Aliases: []string{"ref"},
		Short:   "Inspect and refresh gateway reference data",
	}

	cmd.AddCommand(
		newReferenceRefreshCmd(app),
		newReferenceListCmd(app),
		newReferenceCacheCmd(app),
		newReferenceClearCmd(app),
	)

	return cmd
}

func newReferenceRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [KIND...]",
		Short: "Fetch reference lists from the gateway and update the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}

			ctx, cancel := app.requestContext()
			defer cancel()

			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Refreshing reference data...")
				defer stop()
			}

			results, err := refreshKinds(ctx, app.References, kinds)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReferenceResults(results, app.now()))
			return nil
		},
	}
}

func newReferenceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "list KIND",
		Short:     "Show the entries of one reference list",
		Args:      cobra.ExactArgs(1),
		ValidArgs: referenceKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseReferenceKind(args[0])
			if !ok {
				return unknownKindError(args[0])
			}

			ctx, cancel := app.requestContext()
			defer cancel()

			r, err := app.References.Load(ctx, kind)
			if err != nil {
				return fmt.Errorf("loading %s: %w", kind, err)
			}

			state := wizard.Reduce(wizard.InitialState(), r.Action)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatReferenceList(kind, state.APIData))
			fmt.Fprintln(out, formatter.Dim("source: ")+formatter.SourceBadge(string(r.Source), r.Stale))
			return nil
		},
	}
}

func newReferenceCacheCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Show cached reference lists and their age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.requestContext()
			defer cancel()

			entries, err := app.References.ListCached(ctx)
			if err != nil {
				return fmt.Errorf("listing reference cache: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReferenceCache(entries, app.referenceTTL(), app.now()))
			return nil
		},
	}
}

func newReferenceClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached reference list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.requestContext()
			defer cancel()

			if err := app.References.ClearCache(ctx); err != nil {
				return fmt.Errorf("clearing reference cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Reference cache cleared."))
			return nil
		},
	}
}

// parseKinds validates kind arguments. No arguments means every kind.
func parseKinds(args []string) ([]domain.ReferenceKind, error) {
	if len(args) == 0 {
		return domain.AllReferenceKinds, nil
	}
	kinds := make([]domain.ReferenceKind, 0, len(args))
	for _, a := range args {
		kind, ok := domain.ParseReferenceKind(a)
		if !ok {
			return nil, unknownKindError(a)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func unknownKindError(kind string) error {
	return fmt.Errorf("unknown reference kind %q (one of: %s)", kind, joinNames(referenceKindNames()))
}

// refreshParallel bounds concurrent gateway fetches during a refresh.
const refreshParallel = 4

// refreshKinds refreshes kinds concurrently and returns the results in the
// order given. The first failure cancels the remaining fetches.
func refreshKinds(ctx context.Context, refs service.ReferenceService, kinds []domain.ReferenceKind) ([]*service.ReferenceResult, error) {
	results := make([]*service.ReferenceResult, len(kinds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshParallel)
	for i, kind := range kinds {
		g.Go(func() error {
			r, err := refs.Refresh(ctx, kind)
			if err != nil {
				return fmt.Errorf("refreshing %s: %w", kind, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
