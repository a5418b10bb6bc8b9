package cli

import (
	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// stepView hosts one form page of the wizard. Completing the form dispatches
// the page's actions and moves to the next route; esc moves back without
// saving.
type stepView struct {
	state    *SharedState
	route    journey.Route
	page     *stepPage
	finished bool
}

func newStepView(state *SharedState, route journey.Route, page *stepPage) *stepView {
	if state.Width > 0 {
		page.form = page.form.WithWidth(state.Width)
	}
	return &stepView{state: state, route: route, page: page}
}

// pageFor builds the form page for a route, or nil when the route is not a
// form page or addresses a suspect that does not exist.
func pageFor(s *wizard.State, route journey.Route) *stepPage {
	switch route.Step {
	case journey.StepCaseArea:
		return caseAreaPage(s)
	case journey.StepCaseDetails:
		return caseDetailsPage(s)
	case journey.StepFirstHearing:
		return firstHearingPage(s)
	case journey.StepAddSuspect:
		return addSuspectPage(s, route.SuspectIndex)
	case journey.StepAddCharge:
		return addChargePage(s)
	case journey.StepCaseAssignee:
		return caseAssigneePage(s)
	case journey.StepInvestigator:
		return investigatorPage(s)
	case journey.StepMonitoringCodes:
		return monitoringCodesPage(s)
	}
	if _, ok := resolveSuspect(s.FormData, route.SuspectIndex); !ok {
		return nil
	}
	switch route.Step {
	case journey.StepDateOfBirth, journey.StepGender, journey.StepDisability,
		journey.StepReligion, journey.StepEthnicity, journey.StepSDO,
		journey.StepASN, journey.StepOffenderType:
		return suspectDetailPage(s, route.Step, route.SuspectIndex)
	case journey.StepAliases:
		return aliasPage(s, route.SuspectIndex)
	}
	return nil
}

func (v *stepView) Init() tea.Cmd {
	return v.page.form.Init()
}

func (v *stepView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		back := v.page.back(v.state.Store.State())
		if back == v.route {
			return v, output(formatter.Dim("This is the first page. Press ctrl+c to quit."))
		}
		v.finished = true
		return v, navigateFrom(v.route.Step, back)
	}

	form, cmd := v.page.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.page.form = f
	}

	if v.page.form.State == huh.StateCompleted {
		v.finished = true
		store := v.state.Store
		next := v.page.next(store.Dispatch(v.page.apply(store.State())...))
		return v, tea.Batch(cmd, navigateFrom(v.route.Step, next))
	}
	return v, cmd
}

func (v *stepView) View() string {
	return v.page.form.View()
}

func (v *stepView) ID() ViewID    { return ViewStep }
func (v *stepView) Title() string { return v.page.title }
func (v *stepView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
