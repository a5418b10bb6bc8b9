// Package wizard holds the case-registration state tree and the reducer that
// is its only writer.
package wizard

import "github.com/alexanderramin/casereg/internal/domain"

// Action is a state change request. The set of actions is closed: only the
// types in this file implement it, and Reduce handles each of them.
type Action interface {
	// Type returns the action tag used in logs, e.g. "SET_FIELD".
	Type() string
	isAction()
}

// SetField replaces one flat case field.
type SetField struct {
	Field domain.Field
	Value domain.Value
}

// SetFields merges several flat case fields at once.
type SetFields struct {
	Patch domain.Fields
}

// AddSuspect appends a suspect to the suspect list.
type AddSuspect struct {
	Suspect domain.Suspect
}

type SetSuspectField struct {
	SuspectID string
	Field     domain.Field
	Value     domain.Value
}

type SetSuspectFields struct {
	SuspectID string
	Patch     domain.Fields
}

// ResetSuspectField clears the suspect fields made irrelevant by setting
// Field to Value. It does not set Field itself.
type ResetSuspectField struct {
	SuspectID string
	Field     domain.Field
	Value     domain.Value
}

type AddSuspectAlias struct {
	SuspectID string
	Alias     domain.Alias
}

type RemoveSuspectAlias struct {
	SuspectID string
	AliasID   string
}

type AddSuspectCharge struct {
	SuspectID string
	Charge    domain.Charge
}

type SetChargeField struct {
	SuspectID string
	ChargeID  string
	Field     domain.Field
	Value     domain.Value
}

type SetChargeFields struct {
	SuspectID string
	ChargeID  string
	Patch     domain.Fields
}

// SetChargeVictim links a charge to a victim. An empty VictimID unlinks it.
type SetChargeVictim struct {
	SuspectID string
	ChargeID  string
	VictimID  string
}

type RemoveSuspectCharge struct {
	SuspectID string
	ChargeID  string
}

type RemoveSuspect struct {
	SuspectID string
}

type RemoveAllSuspects struct{}

type AddVictim struct {
	Victim domain.Victim
}

// RemoveVictim removes a victim and unlinks every charge that referenced it.
type RemoveVictim struct {
	VictimID string
}

type SetAreasAndRegisteringUnits struct {
	Areas []domain.AreaUnits
}

type SetAreasAndWitnessCareUnits struct {
	Areas []domain.AreaUnits
}

type SetCourtLocations struct {
	Items []domain.ReferenceItem
}

type SetCaseComplexities struct {
	Items []domain.ReferenceItem
}

type SetCaseMonitoringCodes struct {
	Codes []domain.MonitoringCode
}

type SetCaseProsecutors struct {
	Items []domain.ReferenceItem
}

type SetCaseCaseworkers struct {
	Items []domain.ReferenceItem
}

type SetCaseInvestigatorTitles struct {
	Items []domain.ReferenceItem
}

type SetOffences struct {
	Offences []domain.Offence
}

type SetNavigationData struct {
	Navigation domain.NavigationData
}

// ResetFormData restores the initial form data and keeps loaded reference data.
type ResetFormData struct{}

func (SetField) Type() string                    { return "SET_FIELD" }
func (SetFields) Type() string                   { return "SET_FIELDS" }
func (AddSuspect) Type() string                  { return "ADD_SUSPECT" }
func (SetSuspectField) Type() string             { return "SET_SUSPECT_FIELD" }
func (SetSuspectFields) Type() string            { return "SET_SUSPECT_FIELDS" }
func (ResetSuspectField) Type() string           { return "RESET_SUSPECT_FIELD" }
func (AddSuspectAlias) Type() string             { return "ADD_SUSPECT_ALIAS" }
func (RemoveSuspectAlias) Type() string          { return "REMOVE_SUSPECT_ALIAS" }
func (AddSuspectCharge) Type() string            { return "ADD_SUSPECT_CHARGE" }
func (SetChargeField) Type() string              { return "SET_CHARGE_FIELD" }
func (SetChargeFields) Type() string             { return "SET_CHARGE_FIELDS" }
func (SetChargeVictim) Type() string             { return "SET_CHARGE_VICTIM" }
func (RemoveSuspectCharge) Type() string         { return "REMOVE_SUSPECT_CHARGE" }
func (RemoveSuspect) Type() string               { return "REMOVE_SUSPECT" }
func (RemoveAllSuspects) Type() string           { return "REMOVE_ALL_SUSPECTS" }
func (AddVictim) Type() string                   { return "ADD_VICTIM" }
func (RemoveVictim) Type() string                { return "REMOVE_VICTIM" }
func (SetAreasAndRegisteringUnits) Type() string { return "SET_AREAS_AND_REGISTERING_UNITS" }
func (SetAreasAndWitnessCareUnits) Type() string { return "SET_AREAS_AND_WITNESS_CARE_UNITS" }
func (SetCourtLocations) Type() string           { return "SET_COURT_LOCATIONS" }
func (SetCaseComplexities) Type() string         { return "SET_CASE_COMPLEXITIES" }
func (SetCaseMonitoringCodes) Type() string      { return "SET_CASE_MONITORING_CODES" }
func (SetCaseProsecutors) Type() string          { return "SET_CASE_PROSECUTORS" }
func (SetCaseCaseworkers) Type() string          { return "SET_CASE_CASEWORKERS" }
func (SetCaseInvestigatorTitles) Type() string   { return "SET_CASE_INVESTIGATOR_TITLES" }
func (SetOffences) Type() string                 { return "SET_OFFENCES" }
func (SetNavigationData) Type() string           { return "SET_NAVIGATION_DATA" }
func (ResetFormData) Type() string               { return "RESET_FORM_DATA" }

func (SetField) isAction()                    {}
func (SetFields) isAction()                   {}
func (AddSuspect) isAction()                  {}
func (SetSuspectField) isAction()             {}
func (SetSuspectFields) isAction()            {}
func (ResetSuspectField) isAction()           {}
func (AddSuspectAlias) isAction()             {}
func (RemoveSuspectAlias) isAction()          {}
func (AddSuspectCharge) isAction()            {}
func (SetChargeField) isAction()              {}
func (SetChargeFields) isAction()             {}
func (SetChargeVictim) isAction()             {}
func (RemoveSuspectCharge) isAction()         {}
func (RemoveSuspect) isAction()               {}
func (RemoveAllSuspects) isAction()           {}
func (AddVictim) isAction()                   {}
func (RemoveVictim) isAction()                {}
func (SetAreasAndRegisteringUnits) isAction() {}
func (SetAreasAndWitnessCareUnits) isAction() {}
func (SetCourtLocations) isAction()           {}
func (SetCaseComplexities) isAction()         {}
func (SetCaseMonitoringCodes) isAction()      {}
func (SetCaseProsecutors) isAction()          {}
func (SetCaseCaseworkers) isAction()          {}
func (SetCaseInvestigatorTitles) isAction()   {}
func (SetOffences) isAction()                 {}
func (SetNavigationData) isAction()           {}
func (ResetFormData) isAction()               {}
