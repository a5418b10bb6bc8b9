package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/repository"
	"github.com/alexanderramin/casereg/internal/service"
)

// FormatReferenceResults renders the outcome of loading or refreshing
// reference lists.
func FormatReferenceResults(results []*service.ReferenceResult, now time.Time) string {
	rows := make([][]string, 0, len(results))
	stale := 0
	for _, r := range results {
		if r.Stale {
			stale++
		}
		rows = append(rows, []string{
			Bold(string(r.Kind)),
			StyleFg.Render(fmt.Sprintf("%d", r.Count)),
			SourceBadge(string(r.Source), r.Stale),
			Dim(HumanTimestamp(r.FetchedAt, now)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"KIND", "ITEMS", "SOURCE", "FETCHED"}, rows))
	if stale > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("  WARNING: gateway unavailable, %d list(s) served from an expired cache", stale)) + "\n")
	}
	return RenderBox("Reference data", b.String())
}

// FormatReferenceCache renders the cache table with each entry's age
// against ttl.
func FormatReferenceCache(entries []*repository.CachedReference, ttl time.Duration, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Reference cache is empty. Run 'casereg reference refresh'.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		freshness := StyleGreen.Render("fresh")
		if now.Sub(e.FetchedAt) > ttl {
			freshness = StyleYellow.Render("expired")
		}
		rows = append(rows, []string{
			Bold(string(e.Kind)),
			Dim(fmt.Sprintf("%d B", len(e.Payload))),
			Dim(HumanTimestamp(e.FetchedAt, now)),
			freshness,
		})
	}
	return RenderTable([]string{"KIND", "SIZE", "FETCHED", "STATE"}, rows)
}

// FormatReferenceList renders the entries of one loaded reference slot.
func FormatReferenceList(kind domain.ReferenceKind, api domain.APIData) string {
	headers := []string{"ID", "DESCRIPTION"}
	var rows [][]string

	switch kind {
	case domain.RefAreasRegisteringUnits, domain.RefAreasWitnessCareUnits:
		areas := api.AreasAndRegisteringUnits
		if kind == domain.RefAreasWitnessCareUnits {
			areas = api.AreasAndWitnessCareUnits
		}
		headers = []string{"ID", "AREA", "UNITS"}
		for _, a := range areas {
			units := make([]string, len(a.Units))
			for i, u := range a.Units {
				units[i] = u.Description
			}
			rows = append(rows, []string{Dim(fmt.Sprintf("%d", a.ID)), Bold(a.Description), StyleFg.Render(strings.Join(units, ", "))})
		}
	case domain.RefMonitoringCodes:
		headers = []string{"CODE", "DESCRIPTION"}
		for _, mc := range api.CaseMonitoringCodes {
			rows = append(rows, []string{StylePurple.Render(mc.Code), StyleFg.Render(mc.Description)})
		}
	case domain.RefOffences:
		headers = []string{"ID", "CODE", "DESCRIPTION"}
		for _, o := range api.Offences {
			rows = append(rows, []string{Dim(fmt.Sprintf("%d", o.ID)), StylePurple.Render(o.Code), StyleFg.Render(o.Description)})
		}
	default:
		for _, it := range referenceItems(kind, api) {
			rows = append(rows, []string{Dim(fmt.Sprintf("%d", it.ID)), StyleFg.Render(it.Description)})
		}
	}

	if len(rows) == 0 {
		return Dim(fmt.Sprintf("No %s loaded.", kind)) + "\n"
	}
	return RenderTable(headers, rows)
}

func referenceItems(kind domain.ReferenceKind, api domain.APIData) []domain.ReferenceItem {
	switch kind {
	case domain.RefCourtLocations:
		return api.CourtLocations
	case domain.RefCaseComplexities:
		return api.CaseComplexities
	case domain.RefProsecutors:
		return api.CaseProsecutors
	case domain.RefCaseworkers:
		return api.CaseCaseworkers
	case domain.RefInvestigatorTitles:
		return api.CaseInvestigatorTitles
	}
	return nil
}
