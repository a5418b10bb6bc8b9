package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// routeFlags are the navigator inputs shared by 'route next' and 'route prev'.
type routeFlags struct {
	step       string
	categories string
	suspect    int
	hasAliases bool
}

func newRouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print where the wizard goes from a suspect step",
	}
	cmd.AddCommand(
		newRouteDirectionCmd("next", "Print the route after --step"),
		newRouteDirectionCmd("prev", "Print the route before --step"),
	)
	return cmd
}

func newRouteDirectionCmd(direction, short string) *cobra.Command {
	var f routeFlags

	cmd := &cobra.Command{
		Use:   direction,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := resolveRouteFlags(direction, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), route.String())
			return nil
		},
	}

	f.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("step")

	return cmd
}

func (f *routeFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.step, "step", "", "Current step id, e.g. suspect-gender")
	fs.StringVar(&f.categories, "categories", "", `Selected detail categories, comma separated, e.g. "Gender,Religion"`)
	fs.IntVar(&f.suspect, "suspect", 0, "Suspect index")
	fs.BoolVar(&f.hasAliases, "has-aliases", false, "The suspect already has aliases")
}

// resolveRouteFlags runs the navigator for the given flags. Unknown step ids
// are passed through so the navigator's own fallback applies.
func resolveRouteFlags(direction string, f routeFlags) (journey.Route, error) {
	if f.suspect < 0 {
		return journey.Route{}, fmt.Errorf("--suspect must not be negative")
	}
	selected := domain.ParseCategories(splitList(f.categories))
	step := journey.Step(strings.TrimSpace(f.step))
	if direction == "prev" {
		return journey.PreviousRoute(step, selected, f.suspect), nil
	}
	return journey.NextRoute(step, selected, f.suspect, f.hasAliases), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
