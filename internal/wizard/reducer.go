package wizard

import (
	"slices"

	"github.com/alexanderramin/casereg/internal/domain"
)

// State is the whole wizard state tree.
type State struct {
	FormData domain.FormData
	APIData  domain.APIData
}

// InitialState returns empty form data and no reference data.
func InitialState() *State {
	return &State{FormData: domain.InitialFormData()}
}

// Reduce returns the state that results from applying a to s. It never
// mutates s: every change produces a new State that shares untouched
// branches with s. Actions that name a suspect, charge or victim that does
// not exist, and actions Reduce does not know, return s itself.
func Reduce(s *State, a Action) *State {
	switch a := a.(type) {
	case SetField:
		return withFields(s, domain.Fields{a.Field: a.Value})
	case SetFields:
		return withFields(s, a.Patch)

	case AddSuspect:
		return withSuspects(s, append(slices.Clone(s.FormData.Suspects), a.Suspect))
	case SetSuspectField:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Fields = sp.Fields.With(domain.Fields{a.Field: a.Value})
			return sp
		})
	case SetSuspectFields:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Fields = sp.Fields.With(a.Patch)
			return sp
		})
	case ResetSuspectField:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			patch, clearAliases := SuspectResetValues(sp, a.Field, a.Value)
			sp.Fields = sp.Fields.With(patch)
			if clearAliases {
				sp.Aliases = []domain.Alias{}
			}
			return sp
		})
	case AddSuspectAlias:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Aliases = append(slices.Clone(sp.Aliases), a.Alias)
			return sp
		})
	case RemoveSuspectAlias:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Aliases = slices.DeleteFunc(slices.Clone(sp.Aliases), func(al domain.Alias) bool {
				return al.ID == a.AliasID
			})
			return sp
		})
	case AddSuspectCharge:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Charges = append(slices.Clone(sp.Charges), a.Charge)
			return sp
		})
	case SetChargeField:
		return updateCharge(s, a.SuspectID, a.ChargeID, func(c domain.Charge) domain.Charge {
			c.Fields = c.Fields.With(domain.Fields{a.Field: a.Value})
			return c
		})
	case SetChargeFields:
		return updateCharge(s, a.SuspectID, a.ChargeID, func(c domain.Charge) domain.Charge {
			c.Fields = c.Fields.With(a.Patch)
			return c
		})
	case SetChargeVictim:
		if a.VictimID != "" {
			if _, ok := s.FormData.VictimByID(a.VictimID); !ok {
				return s
			}
		}
		return updateCharge(s, a.SuspectID, a.ChargeID, func(c domain.Charge) domain.Charge {
			c.VictimID = a.VictimID
			return c
		})
	case RemoveSuspectCharge:
		return updateSuspect(s, a.SuspectID, func(sp domain.Suspect) domain.Suspect {
			sp.Charges = slices.DeleteFunc(slices.Clone(sp.Charges), func(c domain.Charge) bool {
				return c.ID == a.ChargeID
			})
			return sp
		})
	case RemoveSuspect:
		i := s.FormData.SuspectIndex(a.SuspectID)
		if i < 0 {
			return s
		}
		return withSuspects(s, slices.Delete(slices.Clone(s.FormData.Suspects), i, i+1))
	case RemoveAllSuspects:
		return withSuspects(s, []domain.Suspect{})

	case AddVictim:
		next := shallowCopy(s)
		next.FormData.Victims = append(slices.Clone(s.FormData.Victims), a.Victim)
		return next
	case RemoveVictim:
		if _, ok := s.FormData.VictimByID(a.VictimID); !ok {
			return s
		}
		next := shallowCopy(s)
		next.FormData.Victims = slices.DeleteFunc(slices.Clone(s.FormData.Victims), func(v domain.Victim) bool {
			return v.ID == a.VictimID
		})
		next.FormData.Suspects = unlinkVictim(s.FormData.Suspects, a.VictimID)
		return next

	case SetAreasAndRegisteringUnits:
		next := shallowCopy(s)
		next.APIData.AreasAndRegisteringUnits = a.Areas
		return next
	case SetAreasAndWitnessCareUnits:
		next := shallowCopy(s)
		next.APIData.AreasAndWitnessCareUnits = a.Areas
		return next
	case SetCourtLocations:
		next := shallowCopy(s)
		next.APIData.CourtLocations = a.Items
		return next
	case SetCaseComplexities:
		next := shallowCopy(s)
		next.APIData.CaseComplexities = a.Items
		return next
	case SetCaseMonitoringCodes:
		next := shallowCopy(s)
		next.APIData.CaseMonitoringCodes = a.Codes
		return next
	case SetCaseProsecutors:
		next := shallowCopy(s)
		next.APIData.CaseProsecutors = a.Items
		return next
	case SetCaseCaseworkers:
		next := shallowCopy(s)
		next.APIData.CaseCaseworkers = a.Items
		return next
	case SetCaseInvestigatorTitles:
		next := shallowCopy(s)
		next.APIData.CaseInvestigatorTitles = a.Items
		return next
	case SetOffences:
		next := shallowCopy(s)
		next.APIData.Offences = a.Offences
		return next

	case SetNavigationData:
		next := shallowCopy(s)
		next.FormData.Navigation = a.Navigation
		return next
	case ResetFormData:
		return &State{FormData: domain.InitialFormData(), APIData: s.APIData}
	}
	return s
}

func shallowCopy(s *State) *State {
	next := *s
	return &next
}

func withFields(s *State, patch domain.Fields) *State {
	next := shallowCopy(s)
	next.FormData.Fields = s.FormData.Fields.With(patch)
	return next
}

func withSuspects(s *State, suspects []domain.Suspect) *State {
	next := shallowCopy(s)
	next.FormData.Suspects = suspects
	return next
}

func updateSuspect(s *State, id string, fn func(domain.Suspect) domain.Suspect) *State {
	i := s.FormData.SuspectIndex(id)
	if i < 0 {
		return s
	}
	suspects := slices.Clone(s.FormData.Suspects)
	suspects[i] = fn(suspects[i])
	return withSuspects(s, suspects)
}

func updateCharge(s *State, suspectID, chargeID string, fn func(domain.Charge) domain.Charge) *State {
	i := s.FormData.SuspectIndex(suspectID)
	if i < 0 || s.FormData.Suspects[i].ChargeIndex(chargeID) < 0 {
		return s
	}
	return updateSuspect(s, suspectID, func(sp domain.Suspect) domain.Suspect {
		charges := slices.Clone(sp.Charges)
		j := sp.ChargeIndex(chargeID)
		charges[j] = fn(charges[j])
		sp.Charges = charges
		return sp
	})
}

func unlinkVictim(suspects []domain.Suspect, victimID string) []domain.Suspect {
	out := slices.Clone(suspects)
	for i, sp := range out {
		if !slices.ContainsFunc(sp.Charges, func(c domain.Charge) bool { return c.VictimID == victimID }) {
			continue
		}
		charges := slices.Clone(sp.Charges)
		for j := range charges {
			if charges[j].VictimID == victimID {
				charges[j].VictimID = ""
			}
		}
		out[i].Charges = charges
	}
	return out
}
