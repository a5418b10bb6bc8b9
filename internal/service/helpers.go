package service

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/gateway"
	"github.com/alexanderramin/casereg/internal/wizard"
)

// decodeReference turns a raw gateway payload into the action that stores it.
func decodeReference(kind domain.ReferenceKind, payload []byte) (wizard.Action, int, error) {
	switch kind {
	case domain.RefAreasRegisteringUnits:
		v, err := decodeList[domain.AreaUnits](payload)
		return wizard.SetAreasAndRegisteringUnits{Areas: v}, len(v), err
	case domain.RefAreasWitnessCareUnits:
		v, err := decodeList[domain.AreaUnits](payload)
		return wizard.SetAreasAndWitnessCareUnits{Areas: v}, len(v), err
	case domain.RefCourtLocations:
		v, err := decodeList[domain.ReferenceItem](payload)
		return wizard.SetCourtLocations{Items: v}, len(v), err
	case domain.RefCaseComplexities:
		v, err := decodeList[domain.ReferenceItem](payload)
		return wizard.SetCaseComplexities{Items: v}, len(v), err
	case domain.RefMonitoringCodes:
		v, err := decodeList[domain.MonitoringCode](payload)
		return wizard.SetCaseMonitoringCodes{Codes: v}, len(v), err
	case domain.RefProsecutors:
		v, err := decodeList[domain.ReferenceItem](payload)
		return wizard.SetCaseProsecutors{Items: v}, len(v), err
	case domain.RefCaseworkers:
		v, err := decodeList[domain.ReferenceItem](payload)
		return wizard.SetCaseCaseworkers{Items: v}, len(v), err
	case domain.RefInvestigatorTitles:
		v, err := decodeList[domain.ReferenceItem](payload)
		return wizard.SetCaseInvestigatorTitles{Items: v}, len(v), err
	case domain.RefOffences:
		v, err := decodeList[domain.Offence](payload)
		return wizard.SetOffences{Offences: v}, len(v), err
	}
	return nil, 0, fmt.Errorf("unknown reference kind %q", kind)
}

func decodeList[T any](payload []byte) ([]T, error) {
	out := []T{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrDecode, err)
	}
	return out, nil
}

// gatewayDown reports whether err means the gateway could not answer at all,
// as opposed to answering with something we reject.
func gatewayDown(err error) bool {
	return errors.Is(err, gateway.ErrGatewayUnavailable) ||
		errors.Is(err, gateway.ErrTimeout) ||
		errors.Is(err, gateway.ErrUnexpectedStatus)
}
