package wizard

import (
	"cmp"
	"slices"

	"github.com/alexanderramin/casereg/internal/domain"
)

// Areas returns the distinct areas found in either area list, sorted by
// description.
func Areas(api domain.APIData) []domain.ReferenceItem {
	seen := make(map[int]bool)
	var out []domain.ReferenceItem
	for _, list := range [][]domain.AreaUnits{api.AreasAndRegisteringUnits, api.AreasAndWitnessCareUnits} {
		for _, a := range list {
			if seen[a.ID] {
				continue
			}
			seen[a.ID] = true
			out = append(out, domain.ReferenceItem{ID: a.ID, Description: a.Description})
		}
	}
	slices.SortStableFunc(out, func(a, b domain.ReferenceItem) int {
		return cmp.Compare(a.Description, b.Description)
	})
	return out
}

// RegisteringUnits returns the registering units of an area.
func RegisteringUnits(api domain.APIData, areaID int) []domain.ReferenceItem {
	return unitsOf(api.AreasAndRegisteringUnits, areaID)
}

// WitnessCareUnits returns the witness care units of an area.
func WitnessCareUnits(api domain.APIData, areaID int) []domain.ReferenceItem {
	return unitsOf(api.AreasAndWitnessCareUnits, areaID)
}

func unitsOf(areas []domain.AreaUnits, areaID int) []domain.ReferenceItem {
	seen := make(map[int]bool)
	var out []domain.ReferenceItem
	for _, a := range areas {
		if a.ID != areaID {
			continue
		}
		for _, u := range a.Units {
			if seen[u.ID] {
				continue
			}
			seen[u.ID] = true
			out = append(out, u)
		}
	}
	return out
}

// ChargeView is a charge with its references resolved for display.
type ChargeView struct {
	ChargeID string
	Offence  string
	FromDate string
	ToDate   string
	Victim   string
}

// SuspectCharges groups the charges of one suspect.
type SuspectCharges struct {
	SuspectID string
	Name      string
	Charges   []ChargeView
}

// ChargesPerSuspect lists every suspect with its charges in form order.
func ChargesPerSuspect(form domain.FormData) []SuspectCharges {
	out := make([]SuspectCharges, 0, len(form.Suspects))
	for _, s := range form.Suspects {
		sc := SuspectCharges{SuspectID: s.ID, Name: SuspectDisplayName(s), Charges: []ChargeView{}}
		for _, c := range s.Charges {
			cv := ChargeView{
				ChargeID: c.ID,
				Offence:  domain.FirstNonEmpty(c.Fields.Selection(domain.FieldChargeOffence).Description, "No offence selected"),
				FromDate: c.Fields.Text(domain.FieldChargeFromDate),
				ToDate:   c.Fields.Text(domain.FieldChargeToDate),
			}
			if v, ok := form.VictimByID(c.VictimID); ok {
				cv.Victim = v.DisplayName()
			}
			sc.Charges = append(sc.Charges, cv)
		}
		out = append(out, sc)
	}
	return out
}

// SuspectsWithoutCharges returns the display names of suspects that have no
// charge yet. A case cannot be submitted while any remain.
func SuspectsWithoutCharges(form domain.FormData) []string {
	var out []string
	for _, s := range form.Suspects {
		if len(s.Charges) == 0 {
			out = append(out, SuspectDisplayName(s))
		}
	}
	return out
}

// OffenceByID looks up an offence in the loaded reference data.
func OffenceByID(api domain.APIData, id int) (domain.Offence, bool) {
	i := slices.IndexFunc(api.Offences, func(o domain.Offence) bool { return o.ID == id })
	if i < 0 {
		return domain.Offence{}, false
	}
	return api.Offences[i], true
}

// SuspectDisplayName is the name shown for a suspect in summaries.
func SuspectDisplayName(s domain.Suspect) string {
	return s.DisplayName()
}
