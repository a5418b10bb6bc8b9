package stub

import "github.com/alexanderramin/casereg/internal/domain"

// DefaultFixtures is the reference data served by `casereg stub`.
func DefaultFixtures() domain.APIData {
	return domain.APIData{
		AreasAndRegisteringUnits: []domain.AreaUnits{
			{ID: 1, Description: "North East", Units: []domain.ReferenceItem{
				{ID: 11, Description: "Newcastle Magistrates"},
				{ID: 12, Description: "Durham Crown"},
			}},
			{ID: 2, Description: "London South", Units: []domain.ReferenceItem{
				{ID: 21, Description: "Croydon"},
				{ID: 22, Description: "Southwark"},
			}},
			{ID: 3, Description: "Wales", Units: []domain.ReferenceItem{
				{ID: 31, Description: "Cardiff"},
			}},
		},
		AreasAndWitnessCareUnits: []domain.AreaUnits{
			{ID: 1, Description: "North East", Units: []domain.ReferenceItem{{ID: 101, Description: "Northumbria WCU"}}},
			{ID: 2, Description: "London South", Units: []domain.ReferenceItem{{ID: 201, Description: "South London WCU"}}},
			{ID: 4, Description: "Yorkshire", Units: []domain.ReferenceItem{{ID: 401, Description: "West Yorkshire WCU"}}},
		},
		CourtLocations: []domain.ReferenceItem{
			{ID: 1, Description: "Newcastle Crown Court"},
			{ID: 2, Description: "Croydon Magistrates' Court"},
			{ID: 3, Description: "Cardiff Crown Court"},
		},
		CaseComplexities: []domain.ReferenceItem{
			{ID: 1, Description: "Standard"},
			{ID: 2, Description: "Complex"},
			{ID: 3, Description: "Serious and complex"},
		},
		CaseMonitoringCodes: []domain.MonitoringCode{
			{Code: "DV", Description: "Domestic abuse"},
			{Code: "HC", Description: "Hate crime"},
			{Code: "CA", Description: "Child abuse"},
			{Code: "MS", Description: "Modern slavery"},
		},
		CaseProsecutors: []domain.ReferenceItem{
			{ID: 1, Description: "A. Patel"},
			{ID: 2, Description: "R. Owen"},
		},
		CaseCaseworkers: []domain.ReferenceItem{
			{ID: 1, Description: "M. Clarke"},
			{ID: 2, Description: "S. Hughes"},
		},
		CaseInvestigatorTitles: []domain.ReferenceItem{
			{ID: 1, Description: "PC"},
			{ID: 2, Description: "DC"},
			{ID: 3, Description: "DS"},
			{ID: 4, Description: "DI"},
		},
		Offences: []domain.Offence{
			{ID: 1, Code: "TH68001", Description: "Theft from a shop"},
			{ID: 2, Code: "CJ88116", Description: "Assault by beating"},
			{ID: 3, Code: "CD71039", Description: "Criminal damage"},
			{ID: 4, Code: "RT88191", Description: "Drive whilst disqualified"},
		},
	}
}
