package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/wizard"
)

// FormatCaseSummary renders every answered section of the case for review
// before submission.
func FormatCaseSummary(s *wizard.State, now time.Time) string {
	f := s.FormData.Fields
	var b strings.Builder

	b.WriteString(Header("Case") + "\n")
	b.WriteString(RenderKeyValues([]KeyValue{
		{"Area", selectionText(f, domain.FieldCaseArea)},
		{"Registering unit", selectionText(f, domain.FieldCaseRegisteringUnit)},
		{"Witness care unit", selectionText(f, domain.FieldCaseWitnessCareUnit)},
		{"URN", OrPlaceholder(s.FormData.URN())},
		{"Operation name", gated(f, domain.FieldOperationNameRadio, OrPlaceholder(f.Text(domain.FieldOperationName)))},
		{"Complexity", selectionText(f, domain.FieldCaseComplexity)},
	}))

	b.WriteString("\n" + Header("First hearing") + "\n")
	b.WriteString(RenderKeyValues([]KeyValue{
		{"Court", gated(f, domain.FieldFirstHearingRadio, selectionText(f, domain.FieldFirstHearingCourtLocation))},
		{"Date", gated(f, domain.FieldFirstHearingRadio, HearingDate(f.Text(domain.FieldFirstHearingDate), now))},
	}))

	b.WriteString("\n" + Header("Suspects and charges") + "\n")
	b.WriteString(FormatChargesTree(s.FormData))

	b.WriteString("\n" + Header("Assignees") + "\n")
	b.WriteString(RenderKeyValues([]KeyValue{
		{"Prosecutor", gated(f, domain.FieldCaseProsecutorRadio, selectionText(f, domain.FieldCaseProsecutorText))},
		{"Caseworker", gated(f, domain.FieldCaseProsecutorRadio, selectionText(f, domain.FieldCaseCaseworkerText))},
	}))

	b.WriteString("\n" + Header("Investigator") + "\n")
	if f.Text(domain.FieldCaseInvestigatorRadio) == domain.RadioYes {
		b.WriteString(RenderKeyValues([]KeyValue{
			{"Name", OrPlaceholder(investigatorName(f))},
			{"Shoulder", OrPlaceholder(strings.TrimSpace(f.Text(domain.FieldCaseInvestigatorShoulderName) + " " + f.Text(domain.FieldCaseInvestigatorShoulderNumber)))},
			{"Police unit", OrPlaceholder(f.Text(domain.FieldCaseInvestigatorPoliceUnit))},
		}))
	} else {
		b.WriteString(Dim("Not provided") + "\n")
	}

	b.WriteString("\n" + Header("Monitoring codes") + "\n")
	codes := monitoringCodeLabels(s.APIData, f.Values(domain.FieldCaseMonitoringCodes))
	if len(codes) == 0 {
		b.WriteString(Dim("None") + "\n")
	}
	for _, c := range codes {
		b.WriteString("  " + StyleFg.Render(c) + "\n")
	}

	if missing := wizard.SuspectsWithoutCharges(s.FormData); len(missing) > 0 {
		b.WriteString("\n" + StyleYellow.Render("  WARNING: no charges for "+strings.Join(missing, ", ")) + "\n")
	}

	return RenderBox("Case summary", b.String())
}

// FormatSuspectSummary lists each suspect with the detail categories chosen
// for them.
func FormatSuspectSummary(form domain.FormData) string {
	if len(form.Suspects) == 0 {
		return Dim("No suspects added yet.") + "\n"
	}
	rows := make([][]string, 0, len(form.Suspects))
	for i, s := range form.Suspects {
		details := Dim("none")
		if cats := s.Categories(); len(cats) > 0 {
			details = StyleFg.Render(strings.Join(domain.CategoryLabels(cats), ", "))
		}
		kind := StylePurple.Render(domain.FirstNonEmpty(string(s.Type()), "person"))
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(wizard.SuspectDisplayName(s)),
			kind,
			details,
			aliasCount(s),
		})
	}
	return RenderTable([]string{"#", "NAME", "TYPE", "DETAILS", "ALIASES"}, rows)
}

// FormatChargesTree renders suspects with their charges as a tree. Suspects
// without charges are highlighted.
func FormatChargesTree(form domain.FormData) string {
	groups := wizard.ChargesPerSuspect(form)
	if len(groups) == 0 {
		return Dim("No suspects added yet.") + "\n"
	}
	var items []TreeItem
	for _, g := range groups {
		items = append(items, TreeItem{
			Title:  g.Name,
			Warn:   len(g.Charges) == 0,
			Detail: chargeCount(len(g.Charges)),
		})
		for i, c := range g.Charges {
			items = append(items, TreeItem{
				Title:  c.Offence,
				Level:  1,
				IsLast: i == len(g.Charges)-1,
				Detail: chargeDetail(c),
			})
		}
	}
	return RenderTree(items)
}

func chargeDetail(c wizard.ChargeView) string {
	var parts []string
	switch {
	case c.FromDate != "" && c.ToDate != "":
		parts = append(parts, c.FromDate+" to "+c.ToDate)
	case c.FromDate != "":
		parts = append(parts, c.FromDate)
	}
	if c.Victim != "" {
		parts = append(parts, "victim: "+c.Victim)
	}
	return strings.Join(parts, ", ")
}

func chargeCount(n int) string {
	if n == 1 {
		return "1 charge"
	}
	return fmt.Sprintf("%d charges", n)
}

func aliasCount(s domain.Suspect) string {
	if !s.HasAliases() {
		return Dim("--")
	}
	names := make([]string, len(s.Aliases))
	for i, a := range s.Aliases {
		names[i] = a.DisplayName()
	}
	return StyleFg.Render(strings.Join(names, ", "))
}

func selectionText(f domain.Fields, field domain.Field) string {
	return OrPlaceholder(f.Selection(field).Description)
}

// gated shows value only when the section's radio was answered yes.
func gated(f domain.Fields, radio domain.Field, value string) string {
	switch f.Text(radio) {
	case domain.RadioYes:
		return value
	case domain.RadioNo:
		return Dim("Not provided")
	default:
		return Placeholder()
	}
}

func investigatorName(f domain.Fields) string {
	parts := []string{
		f.Selection(domain.FieldCaseInvestigatorTitle).Description,
		f.Text(domain.FieldCaseInvestigatorFirstName),
		f.Text(domain.FieldCaseInvestigatorLastName),
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func monitoringCodeLabels(api domain.APIData, codes []string) []string {
	byCode := make(map[string]string, len(api.CaseMonitoringCodes))
	for _, mc := range api.CaseMonitoringCodes {
		byCode[mc.Code] = mc.Description
	}
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if desc, ok := byCode[c]; ok {
			out = append(out, c+"  "+desc)
		} else {
			out = append(out, c)
		}
	}
	return out
}
