package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
)

// resolveSuspect maps a route's suspect index to the suspect it addresses.
// An index at or past the end of the list means a suspect not yet added.
func resolveSuspect(form domain.FormData, index int) (domain.Suspect, bool) {
	if index < 0 || index >= len(form.Suspects) {
		return domain.Suspect{}, false
	}
	return form.Suspects[index], true
}

// resolveRouteInput accepts either a full route path or a bare step id,
// with an optional suspect number for suspect-scoped steps:
//   - /case-registration/suspect-1/suspect-gender
//   - case-summary
//   - suspect-gender 1
func resolveRouteInput(args []string) (journey.Route, error) {
	if len(args) == 0 {
		return journey.Route{}, fmt.Errorf("route or step required")
	}
	if strings.HasPrefix(args[0], "/") {
		return journey.ParseRoute(args[0])
	}
	step, ok := journey.ParseStep(args[0])
	if !ok {
		return journey.Route{}, fmt.Errorf("unknown step %q", args[0])
	}
	if !step.SuspectScoped() {
		return journey.CaseRoute(step), nil
	}
	index := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return journey.Route{}, fmt.Errorf("invalid suspect index %q", args[1])
		}
		index = n
	}
	return journey.SuspectRoute(step, index), nil
}

// summaryRedirect sends the user back to the case summary after changing
// an answer they reached from it. Suspect and charge edits are let through
// until they reach a case-level page. The bool reports that the navigation
// flag should be cleared.
func summaryRedirect(nav domain.NavigationData, from journey.Step, next journey.Route) (journey.Route, bool) {
	if !nav.FromCaseSummary {
		return next, false
	}
	switch {
	case from == journey.StepCaseSummary:
		return next, false
	case next.Step.SuspectScoped():
		return next, false
	case next.Step == journey.StepSuspectSummary, next.Step == journey.StepChargesSummary:
		return next, false
	case next.Step == journey.StepAddCharge && from == journey.StepChargesSummary:
		return next, false
	}
	return journey.CaseRoute(journey.StepCaseSummary), true
}
