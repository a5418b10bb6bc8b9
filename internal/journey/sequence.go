package journey

import "github.com/alexanderramin/casereg/internal/domain"

type routeStep struct {
	step     Step
	category domain.Category
}

// routeSequence is the canonical order of the per-suspect detail pages.
// Reordering it changes the order users see system-wide.
var routeSequence = []routeStep{
	{StepAddSuspect, domain.CategoryAddSuspect},
	{StepDateOfBirth, domain.CategoryDateOfBirth},
	{StepGender, domain.CategoryGender},
	{StepDisability, domain.CategoryDisability},
	{StepReligion, domain.CategoryReligion},
	{StepEthnicity, domain.CategoryEthnicity},
	{StepAliases, domain.CategoryAliases},
	{StepSDO, domain.CategorySDO},
	{StepASN, domain.CategoryASN},
	{StepOffenderType, domain.CategoryOffenderType},
}

// filteredSequence restricts routeSequence to the selected categories,
// keeping table order. The add-suspect sentinel is never included.
func filteredSequence(selected []domain.Category) []Step {
	chosen := make(map[domain.Category]bool, len(selected))
	for _, c := range selected {
		chosen[c] = true
	}
	var steps []Step
	for _, rs := range routeSequence {
		if rs.category == domain.CategoryAddSuspect {
			continue
		}
		if chosen[rs.category] {
			steps = append(steps, rs.step)
		}
	}
	return steps
}

// CategoryFor returns the detail category a suspect step collects.
func CategoryFor(step Step) (domain.Category, bool) {
	if step == StepAliasSummary {
		return domain.CategoryAliases, true
	}
	for _, rs := range routeSequence {
		if rs.step == step {
			return rs.category, true
		}
	}
	return "", false
}
