package domain

// ReferenceKind identifies one reference-data list served by the gateway.
type ReferenceKind string

const (
	RefAreasRegisteringUnits ReferenceKind = "areas-registering-units"
	RefAreasWitnessCareUnits ReferenceKind = "areas-witness-care-units"
	RefCourtLocations        ReferenceKind = "court-locations"
	RefCaseComplexities      ReferenceKind = "case-complexities"
	RefMonitoringCodes       ReferenceKind = "monitoring-codes"
	RefProsecutors           ReferenceKind = "prosecutors"
	RefCaseworkers           ReferenceKind = "caseworkers"
	RefInvestigatorTitles    ReferenceKind = "investigator-titles"
	RefOffences              ReferenceKind = "offences"
)

// AllReferenceKinds lists every kind in load order.
var AllReferenceKinds = []ReferenceKind{
	RefAreasRegisteringUnits,
	RefAreasWitnessCareUnits,
	RefCourtLocations,
	RefCaseComplexities,
	RefMonitoringCodes,
	RefProsecutors,
	RefCaseworkers,
	RefInvestigatorTitles,
	RefOffences,
}

// ParseReferenceKind validates a kind string.
func ParseReferenceKind(s string) (ReferenceKind, bool) {
	for _, k := range AllReferenceKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// ReferenceItem is a generic id/description reference entry.
type ReferenceItem struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// AreaUnits is an area together with the units (registering or witness
// care) that belong to it.
type AreaUnits struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Units       []ReferenceItem `json:"units"`
}

type MonitoringCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Offence struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// APIData holds reference lists fetched from the gateway. A nil slot has not
// been loaded yet.
type APIData struct {
	AreasAndRegisteringUnits []AreaUnits
	AreasAndWitnessCareUnits []AreaUnits
	CourtLocations           []ReferenceItem
	CaseComplexities         []ReferenceItem
	CaseMonitoringCodes      []MonitoringCode
	CaseProsecutors          []ReferenceItem
	CaseCaseworkers          []ReferenceItem
	CaseInvestigatorTitles   []ReferenceItem
	Offences                 []Offence
}
