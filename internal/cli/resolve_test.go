package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/testutil"
)

func TestResolveRouteInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want journey.Route
	}{
		{"full case path", []string{"/case-registration/case-summary"}, journey.CaseRoute(journey.StepCaseSummary)},
		{"full suspect path", []string{"/case-registration/suspect-1/suspect-gender"}, journey.SuspectRoute(journey.StepGender, 1)},
		{"bare case step", []string{"case-details"}, journey.CaseRoute(journey.StepCaseDetails)},
		{"bare suspect step defaults to first", []string{"suspect-gender"}, journey.SuspectRoute(journey.StepGender, 0)},
		{"bare suspect step with index", []string{"suspect-gender", "2"}, journey.SuspectRoute(journey.StepGender, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRouteInput(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRouteInput_Errors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"no-such-step"},
		{"suspect-gender", "x"},
		{"suspect-gender", "-1"},
		{"/elsewhere/case-summary"},
	} {
		_, err := resolveRouteInput(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestResolveSuspect(t *testing.T) {
	ada := testutil.NewTestPerson("Ada", "Lovelace")
	form := domain.InitialFormData()
	form.Suspects = []domain.Suspect{ada}

	got, ok := resolveSuspect(form, 0)
	require.True(t, ok)
	assert.Equal(t, ada.ID, got.ID)

	_, ok = resolveSuspect(form, 1)
	assert.False(t, ok)
	_, ok = resolveSuspect(form, -1)
	assert.False(t, ok)
}

func TestSummaryRedirect(t *testing.T) {
	fromSummary := domain.NavigationData{FromCaseSummary: true}
	summary := journey.CaseRoute(journey.StepCaseSummary)

	tests := []struct {
		name      string
		nav       domain.NavigationData
		from      journey.Step
		next      journey.Route
		want      journey.Route
		wantReset bool
	}{
		{
			name: "no flag passes through",
			from: journey.StepCaseDetails,
			next: journey.CaseRoute(journey.StepFirstHearing),
			want: journey.CaseRoute(journey.StepFirstHearing),
		},
		{
			name:      "case page edit returns to summary",
			nav:       fromSummary,
			from:      journey.StepCaseDetails,
			next:      journey.CaseRoute(journey.StepFirstHearing),
			want:      summary,
			wantReset: true,
		},
		{
			name: "leaving the summary itself is allowed",
			nav:  fromSummary,
			from: journey.StepCaseSummary,
			next: journey.CaseRoute(journey.StepCaseDetails),
			want: journey.CaseRoute(journey.StepCaseDetails),
		},
		{
			name: "suspect sub-journey continues",
			nav:  fromSummary,
			from: journey.StepAddSuspect,
			next: journey.SuspectRoute(journey.StepGender, 0),
			want: journey.SuspectRoute(journey.StepGender, 0),
		},
		{
			name: "suspect summary reached",
			nav:  fromSummary,
			from: journey.StepGender,
			next: journey.CaseRoute(journey.StepSuspectSummary),
			want: journey.CaseRoute(journey.StepSuspectSummary),
		},
		{
			name: "add charge from charges summary",
			nav:  fromSummary,
			from: journey.StepChargesSummary,
			next: journey.CaseRoute(journey.StepAddCharge),
			want: journey.CaseRoute(journey.StepAddCharge),
		},
		{
			name:      "leaving suspects for a case page returns to summary",
			nav:       fromSummary,
			from:      journey.StepSuspectSummary,
			next:      journey.CaseRoute(journey.StepAddCharge),
			want:      summary,
			wantReset: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reset := summaryRedirect(tt.nav, tt.from, tt.next)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReset, reset)
		})
	}
}
