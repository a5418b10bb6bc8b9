// Package journey holds the wizard's step vocabulary and the navigation
// rules that order the steps.
package journey

import (
	"fmt"
	"strconv"
	"strings"
)

// BasePath prefixes every wizard route.
const BasePath = "/case-registration"

// Step identifies one page of the wizard. The string value is the route
// identifier that appears in paths.
type Step string

// Suspect-scoped steps.
const (
	StepAddSuspect   Step = "add-suspect"
	StepDateOfBirth  Step = "suspect-dob"
	StepGender       Step = "suspect-gender"
	StepDisability   Step = "suspect-disability"
	StepReligion     Step = "suspect-religion"
	StepEthnicity    Step = "suspect-ethnicity"
	StepAliases      Step = "suspect-alias"
	StepAliasSummary Step = "suspect-alias-summary"
	StepSDO          Step = "suspect-sdo"
	StepASN          Step = "suspect-asn"
	StepOffenderType Step = "suspect-offender-type"
)

// Case-level steps.
const (
	StepCaseArea        Step = "case-area"
	StepCaseDetails     Step = "case-details"
	StepFirstHearing    Step = "first-hearing"
	StepSuspectSummary  Step = "suspect-summary"
	StepAddCharge       Step = "add-charge"
	StepChargesSummary  Step = "charges-summary"
	StepCaseAssignee    Step = "case-assignee"
	StepInvestigator    Step = "case-investigator"
	StepMonitoringCodes Step = "case-monitoring-codes"
	StepCaseSummary     Step = "case-summary"
	StepConfirmation    Step = "case-confirmation"
)

var suspectSteps = map[Step]bool{
	StepAddSuspect:   true,
	StepDateOfBirth:  true,
	StepGender:       true,
	StepDisability:   true,
	StepReligion:     true,
	StepEthnicity:    true,
	StepAliases:      true,
	StepAliasSummary: true,
	StepSDO:          true,
	StepASN:          true,
	StepOffenderType: true,
}

var caseSteps = map[Step]bool{
	StepCaseArea:        true,
	StepCaseDetails:     true,
	StepFirstHearing:    true,
	StepSuspectSummary:  true,
	StepAddCharge:       true,
	StepChargesSummary:  true,
	StepCaseAssignee:    true,
	StepInvestigator:    true,
	StepMonitoringCodes: true,
	StepCaseSummary:     true,
	StepConfirmation:    true,
}

// SuspectScoped reports whether the step's route carries a suspect index.
func (s Step) SuspectScoped() bool {
	return suspectSteps[s]
}

// ParseStep validates a route identifier.
func ParseStep(id string) (Step, bool) {
	s := Step(id)
	if suspectSteps[s] || caseSteps[s] {
		return s, true
	}
	return "", false
}

// Route is a step plus, for suspect-scoped steps, the suspect's position in
// the suspect list.
type Route struct {
	Step         Step
	SuspectIndex int
}

// SuspectRoute returns a route scoped to the suspect at index.
func SuspectRoute(step Step, index int) Route {
	return Route{Step: step, SuspectIndex: index}
}

// CaseRoute returns an unscoped route.
func CaseRoute(step Step) Route {
	return Route{Step: step}
}

// String renders the route path, e.g. "/case-registration/suspect-3/suspect-gender"
// or "/case-registration/suspect-summary".
func (r Route) String() string {
	if r.Step.SuspectScoped() {
		return fmt.Sprintf("%s/suspect-%d/%s", BasePath, r.SuspectIndex, r.Step)
	}
	return BasePath + "/" + string(r.Step)
}

// ParseRoute is the inverse of Route.String.
func ParseRoute(path string) (Route, error) {
	rest, ok := strings.CutPrefix(path, BasePath+"/")
	if !ok {
		return Route{}, fmt.Errorf("route %q: missing %s prefix", path, BasePath)
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		step, ok := ParseStep(parts[0])
		if !ok || step.SuspectScoped() {
			return Route{}, fmt.Errorf("route %q: unknown case step %q", path, parts[0])
		}
		return CaseRoute(step), nil
	case 2:
		idxStr, ok := strings.CutPrefix(parts[0], "suspect-")
		if !ok {
			return Route{}, fmt.Errorf("route %q: expected suspect segment, got %q", path, parts[0])
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 {
			return Route{}, fmt.Errorf("route %q: invalid suspect index %q", path, idxStr)
		}
		step, ok := ParseStep(parts[1])
		if !ok || !step.SuspectScoped() {
			return Route{}, fmt.Errorf("route %q: unknown suspect step %q", path, parts[1])
		}
		return SuspectRoute(step, idx), nil
	}
	return Route{}, fmt.Errorf("route %q: too many segments", path)
}
