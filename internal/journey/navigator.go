package journey

import (
	"slices"

	"github.com/alexanderramin/casereg/internal/domain"
)

// NextRoute returns where to go after current in a suspect's detail
// sub-journey. Steps absent from the selected sequence, the last step, and
// an empty selection all lead to the suspect summary. When the next step is
// alias entry and the suspect already has aliases, the alias summary is
// returned instead.
func NextRoute(current Step, selected []domain.Category, suspectIndex int, hasAliases bool) Route {
	if len(selected) == 0 {
		return CaseRoute(StepSuspectSummary)
	}
	seq := filteredSequence(selected)
	i := slices.Index(seq, current)
	if i < 0 || i+1 >= len(seq) {
		return CaseRoute(StepSuspectSummary)
	}
	next := seq[i+1]
	if next == StepAliases && hasAliases {
		return SuspectRoute(StepAliasSummary, suspectIndex)
	}
	return SuspectRoute(next, suspectIndex)
}

// PreviousRoute returns where "back" goes from current. Going back onto the
// alias step always lands on the alias summary; the first step, or a step
// not in the selected sequence, goes back to add-suspect.
func PreviousRoute(current Step, selected []domain.Category, suspectIndex int) Route {
	seq := filteredSequence(selected)
	i := slices.Index(seq, current)
	if i <= 0 {
		return SuspectRoute(StepAddSuspect, suspectIndex)
	}
	prev := seq[i-1]
	if prev == StepAliases {
		return SuspectRoute(StepAliasSummary, suspectIndex)
	}
	return SuspectRoute(prev, suspectIndex)
}

// FirstRoute returns where the add-suspect page leads: the first selected
// detail page, or the suspect summary when nothing was selected.
func FirstRoute(selected []domain.Category, suspectIndex int, hasAliases bool) Route {
	seq := filteredSequence(selected)
	if len(seq) == 0 {
		return CaseRoute(StepSuspectSummary)
	}
	if seq[0] == StepAliases && hasAliases {
		return SuspectRoute(StepAliasSummary, suspectIndex)
	}
	return SuspectRoute(seq[0], suspectIndex)
}

// LastRoute returns the final detail page of a suspect's sub-journey, used
// when stepping back from the suspect summary.
func LastRoute(selected []domain.Category, suspectIndex int) Route {
	seq := filteredSequence(selected)
	if len(seq) == 0 {
		return SuspectRoute(StepAddSuspect, suspectIndex)
	}
	last := seq[len(seq)-1]
	if last == StepAliases {
		return SuspectRoute(StepAliasSummary, suspectIndex)
	}
	return SuspectRoute(last, suspectIndex)
}
