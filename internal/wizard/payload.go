package wizard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/casereg/internal/contract"
	"github.com/alexanderramin/casereg/internal/domain"
)

// BuildCaseRequest assembles the gateway payload from the wizard state.
// Optional sections are omitted when their gating radio was not answered
// "yes", and suspect details only appear for the categories selected.
func BuildCaseRequest(s *State) contract.CaseRegistrationRequest {
	f := s.FormData.Fields
	req := contract.CaseRegistrationRequest{
		URN:               s.FormData.URN(),
		AreaID:            f.Selection(domain.FieldCaseArea).ID,
		RegisteringUnitID: f.Selection(domain.FieldCaseRegisteringUnit).ID,
		WitnessCareUnitID: f.Selection(domain.FieldCaseWitnessCareUnit).ID,
		ComplexityID:      f.Selection(domain.FieldCaseComplexity).ID,
		MonitoringCodes:   slices.Clone(f.Values(domain.FieldCaseMonitoringCodes)),
		Defendants:        make([]contract.Defendant, 0, len(s.FormData.Suspects)),
	}
	if req.MonitoringCodes == nil {
		req.MonitoringCodes = []string{}
	}
	if f.Text(domain.FieldOperationNameRadio) == domain.RadioYes {
		req.OperationName = strings.TrimSpace(f.Text(domain.FieldOperationName))
	}
	if f.Text(domain.FieldFirstHearingRadio) == domain.RadioYes {
		req.FirstHearing = &contract.FirstHearing{
			CourtLocationID: f.Selection(domain.FieldFirstHearingCourtLocation).ID,
			Date:            f.Text(domain.FieldFirstHearingDate),
		}
	}
	if f.Text(domain.FieldCaseProsecutorRadio) == domain.RadioYes {
		req.ProsecutorID = f.Selection(domain.FieldCaseProsecutorText).ID
		req.CaseworkerID = f.Selection(domain.FieldCaseCaseworkerText).ID
	}
	if f.Text(domain.FieldCaseInvestigatorRadio) == domain.RadioYes {
		req.Investigator = &contract.Investigator{
			TitleID:        f.Selection(domain.FieldCaseInvestigatorTitle).ID,
			FirstName:      f.Text(domain.FieldCaseInvestigatorFirstName),
			LastName:       f.Text(domain.FieldCaseInvestigatorLastName),
			ShoulderName:   f.Text(domain.FieldCaseInvestigatorShoulderName),
			ShoulderNumber: f.Text(domain.FieldCaseInvestigatorShoulderNumber),
			PoliceUnit:     f.Text(domain.FieldCaseInvestigatorPoliceUnit),
		}
	}
	for _, sp := range s.FormData.Suspects {
		req.Defendants = append(req.Defendants, buildDefendant(s, sp))
	}
	return req
}

func buildDefendant(s *State, sp domain.Suspect) contract.Defendant {
	f := sp.Fields
	d := contract.Defendant{
		Type:    string(sp.Type()),
		Charges: make([]contract.Charge, 0, len(sp.Charges)),
	}
	if sp.Type() == domain.SuspectCompany {
		d.CompanyName = f.Text(domain.FieldSuspectCompanyName)
	} else {
		d.FirstName = f.Text(domain.FieldSuspectFirstName)
		d.LastName = f.Text(domain.FieldSuspectLastName)
	}
	for _, c := range sp.Categories() {
		if !c.AppliesTo(sp.Type()) {
			continue
		}
		switch c {
		case domain.CategoryDateOfBirth:
			d.DateOfBirth = FormatDate(f.Text(domain.FieldSuspectDOBDay), f.Text(domain.FieldSuspectDOBMonth), f.Text(domain.FieldSuspectDOBYear))
		case domain.CategoryGender:
			d.Gender = f.Text(domain.FieldSuspectGender)
		case domain.CategoryDisability:
			d.Disability = radioBool(f.Text(domain.FieldSuspectDisability))
		case domain.CategoryReligion:
			d.Religion = f.Text(domain.FieldSuspectReligion)
		case domain.CategoryEthnicity:
			d.Ethnicity = f.Text(domain.FieldSuspectEthnicity)
		case domain.CategoryAliases:
			for _, a := range sp.Aliases {
				d.Aliases = append(d.Aliases, contract.PersonName{FirstName: a.FirstName, LastName: a.LastName})
			}
		case domain.CategorySDO:
			d.SeriousDangerousOffender = radioBool(f.Text(domain.FieldSuspectSDO))
		case domain.CategoryASN:
			d.ArrestSummonsNumber = f.Text(domain.FieldSuspectASN)
		case domain.CategoryOffenderType:
			d.OffenderType = f.Text(domain.FieldSuspectOffenderType)
		}
	}
	for _, c := range sp.Charges {
		sel := c.Fields.Selection(domain.FieldChargeOffence)
		cp := contract.Charge{
			OffenceID: sel.ID,
			FromDate:  c.Fields.Text(domain.FieldChargeFromDate),
			ToDate:    c.Fields.Text(domain.FieldChargeToDate),
		}
		if o, ok := OffenceByID(s.APIData, sel.IDOr(-1)); ok {
			cp.OffenceCode = o.Code
		}
		if v, ok := s.FormData.VictimByID(c.VictimID); ok {
			cp.Victim = &contract.PersonName{FirstName: v.FirstName, LastName: v.LastName}
		}
		d.Charges = append(d.Charges, cp)
	}
	return d
}

// FormatDate joins day, month and year answers into YYYY-MM-DD. It returns
// "" when any part is missing or not a number.
func FormatDate(day, month, year string) string {
	d, errD := strconv.Atoi(strings.TrimSpace(day))
	m, errM := strconv.Atoi(strings.TrimSpace(month))
	y, errY := strconv.Atoi(strings.TrimSpace(year))
	if errD != nil || errM != nil || errY != nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func radioBool(v string) *bool {
	switch v {
	case domain.RadioYes:
		b := true
		return &b
	case domain.RadioNo:
		b := false
		return &b
	}
	return nil
}
