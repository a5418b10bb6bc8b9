package wizard

import (
	"slices"

	"github.com/alexanderramin/casereg/internal/domain"
)

// GetResetFieldValues returns the dependent case fields to clear when a
// gating field takes the given value. The patch is empty when nothing needs
// resetting.
func GetResetFieldValues(field domain.Field, value string) domain.Fields {
	if value != domain.RadioNo {
		return domain.Fields{}
	}
	switch field {
	case domain.FieldCaseProsecutorRadio:
		return domain.Fields{
			domain.FieldCaseProsecutorText: domain.EmptySelection(),
			domain.FieldCaseCaseworkerText: domain.EmptySelection(),
		}
	case domain.FieldCaseInvestigatorRadio:
		return domain.Fields{
			domain.FieldCaseInvestigatorTitle:          domain.EmptySelection(),
			domain.FieldCaseInvestigatorFirstName:      domain.Text(""),
			domain.FieldCaseInvestigatorLastName:       domain.Text(""),
			domain.FieldCaseInvestigatorShoulderName:   domain.Text(""),
			domain.FieldCaseInvestigatorShoulderNumber: domain.Text(""),
			domain.FieldCaseInvestigatorPoliceUnit:     domain.Text(""),
		}
	case domain.FieldFirstHearingRadio:
		return domain.Fields{
			domain.FieldFirstHearingCourtLocation: domain.EmptySelection(),
			domain.FieldFirstHearingDate:          domain.Text(""),
		}
	}
	return domain.Fields{}
}

// SuspectResetValues returns the suspect fields to clear when field changes
// to value, and whether the suspect's aliases must go too.
func SuspectResetValues(s domain.Suspect, field domain.Field, value domain.Value) (domain.Fields, bool) {
	switch field {
	case domain.FieldSuspectType:
		t, _ := value.(domain.Text)
		switch domain.SuspectType(t) {
		case domain.SuspectCompany:
			patch := domain.Fields{}
			for _, f := range domain.PersonOnlyFields {
				patch[f] = domain.Text("")
			}
			// Only the company-applicable details survive.
			var kept []string
			for _, c := range s.Categories() {
				if c.AppliesTo(domain.SuspectCompany) {
					kept = append(kept, string(c))
				}
			}
			patch[domain.FieldSuspectAdditionalDetails] = domain.Values(nonNil(kept))
			return patch, true
		case domain.SuspectPerson:
			return domain.Fields{domain.FieldSuspectCompanyName: domain.Text("")}, false
		}
	case domain.FieldSuspectAdditionalDetails:
		labels, _ := value.(domain.Values)
		selected := domain.ParseCategories(labels)
		patch := domain.Fields{}
		for _, c := range domain.DetailCategories {
			if slices.Contains(selected, c) {
				continue
			}
			for _, f := range c.Fields() {
				patch[f] = domain.Text("")
			}
		}
		return patch, !slices.Contains(selected, domain.CategoryAliases)
	}
	return domain.Fields{}, false
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
