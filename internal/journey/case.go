package journey

import "slices"

// caseOrder is the fixed order of the case-level pages. Add-suspect stands
// for the whole per-suspect sub-journey.
var caseOrder = []Step{
	StepCaseArea,
	StepCaseDetails,
	StepFirstHearing,
	StepAddSuspect,
	StepSuspectSummary,
	StepAddCharge,
	StepChargesSummary,
	StepCaseAssignee,
	StepInvestigator,
	StepMonitoringCodes,
	StepCaseSummary,
	StepConfirmation,
}

func caseRouteFor(step Step) Route {
	if step == StepAddSuspect {
		return SuspectRoute(StepAddSuspect, 0)
	}
	return CaseRoute(step)
}

// StartRoute is the first page of the wizard.
func StartRoute() Route {
	return CaseRoute(caseOrder[0])
}

// NextCaseRoute returns the case-level page after current. Unknown steps
// restart the wizard; the confirmation page is terminal.
func NextCaseRoute(current Step) Route {
	i := slices.Index(caseOrder, current)
	if i < 0 {
		return StartRoute()
	}
	if i+1 >= len(caseOrder) {
		return CaseRoute(current)
	}
	return caseRouteFor(caseOrder[i+1])
}

// PreviousCaseRoute returns the case-level page before current, or the
// start page.
func PreviousCaseRoute(current Step) Route {
	i := slices.Index(caseOrder, current)
	if i <= 0 {
		return StartRoute()
	}
	return caseRouteFor(caseOrder[i-1])
}

// Progress returns the 1-based position of step in the case-level order and
// the number of case-level pages. Suspect-scoped steps count as add-suspect.
// Unknown steps report position 0.
func Progress(step Step) (int, int) {
	if step.SuspectScoped() {
		step = StepAddSuspect
	}
	return slices.Index(caseOrder, step) + 1, len(caseOrder)
}
