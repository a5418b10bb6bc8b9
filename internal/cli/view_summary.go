package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// renderCursorList renders one line per entry with a cursor marker.
func renderCursorList(lines []string, cursor int) string {
	var b strings.Builder
	for i, line := range lines {
		marker := "  "
		if i == cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			line = formatter.StyleBold.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func moveCursor(cursor, n int, k string) int {
	switch k {
	case "up", "k":
		return max(cursor-1, 0)
	case "down", "j":
		return max(min(cursor+1, n-1), 0)
	}
	return cursor
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(key.WithKeys(strings.Split(keys, "/")...), key.WithHelp(keys, help))
}

// ── alias summary ────────────────────────────────────────────────────────────

type aliasSummaryView struct {
	state  *SharedState
	index  int
	cursor int
}

func newAliasSummaryView(state *SharedState, index int) *aliasSummaryView {
	return &aliasSummaryView{state: state, index: index}
}

func (v *aliasSummaryView) suspect() (domain.Suspect, bool) {
	return resolveSuspect(v.state.Store.State().FormData, v.index)
}

func (v *aliasSummaryView) Init() tea.Cmd { return nil }

func (v *aliasSummaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	sp, ok := v.suspect()
	if !ok {
		return v, navigate(journey.CaseRoute(journey.StepSuspectSummary))
	}
	from := journey.StepAliasSummary

	switch keyMsg.String() {
	case "up", "k", "down", "j":
		v.cursor = moveCursor(v.cursor, len(sp.Aliases), keyMsg.String())
	case "a":
		return v, navigateFrom(from, journey.SuspectRoute(journey.StepAliases, v.index))
	case "x", "d":
		if v.cursor >= len(sp.Aliases) {
			return v, nil
		}
		alias := sp.Aliases[v.cursor]
		v.state.Store.Dispatch(wizard.RemoveSuspectAlias{SuspectID: sp.ID, AliasID: alias.ID})
		v.cursor = max(min(v.cursor, len(sp.Aliases)-2), 0)
		return v, output(formatter.Dim("Removed alias " + alias.DisplayName() + "."))
	case "enter", "c":
		return v, navigateFrom(from, journey.NextRoute(journey.StepAliases, sp.Categories(), v.index, true))
	case "esc":
		return v, navigateFrom(from, journey.PreviousRoute(journey.StepAliases, sp.Categories(), v.index))
	}
	return v, nil
}

func (v *aliasSummaryView) View() string {
	sp, ok := v.suspect()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Aliases for "+wizard.SuspectDisplayName(sp)) + "\n\n")
	if !sp.HasAliases() {
		b.WriteString("  " + formatter.Dim("No aliases recorded. Press a to add one.") + "\n")
		return b.String()
	}
	names := make([]string, len(sp.Aliases))
	for i, a := range sp.Aliases {
		names[i] = a.DisplayName()
	}
	b.WriteString(renderCursorList(names, v.cursor))
	return b.String()
}

func (v *aliasSummaryView) ID() ViewID    { return ViewAliasSummary }
func (v *aliasSummaryView) Title() string { return "Aliases" }
func (v *aliasSummaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("a", "add"),
		binding("x", "remove"),
		binding("enter", "continue"),
		binding("esc", "back"),
	}
}

// ── suspect summary ──────────────────────────────────────────────────────────

type suspectSummaryView struct {
	state  *SharedState
	cursor int
}

func newSuspectSummaryView(state *SharedState) *suspectSummaryView {
	return &suspectSummaryView{state: state}
}

func (v *suspectSummaryView) Init() tea.Cmd { return nil }

func (v *suspectSummaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	store := v.state.Store
	form := store.State().FormData
	from := journey.StepSuspectSummary

	switch keyMsg.String() {
	case "up", "k", "down", "j":
		v.cursor = moveCursor(v.cursor, len(form.Suspects), keyMsg.String())
	case "a":
		return v, navigateFrom(from, journey.SuspectRoute(journey.StepAddSuspect, len(form.Suspects)))
	case "e", "enter":
		if v.cursor >= len(form.Suspects) {
			return v, nil
		}
		nav := form.Navigation
		nav.FromSuspectSummary = true
		store.Dispatch(wizard.SetNavigationData{Navigation: nav})
		return v, navigateFrom(from, journey.SuspectRoute(journey.StepAddSuspect, v.cursor))
	case "x":
		if v.cursor >= len(form.Suspects) {
			return v, nil
		}
		sp := form.Suspects[v.cursor]
		name := wizard.SuspectDisplayName(sp)
		return v, confirmCmd(v.state, "Remove suspect", "Remove "+name+" and their charges?", func() tea.Cmd {
			store.Dispatch(wizard.RemoveSuspect{SuspectID: sp.ID})
			v.cursor = max(min(v.cursor, len(store.State().FormData.Suspects)-1), 0)
			return output(formatter.Dim("Removed " + name + "."))
		})
	case "c":
		if len(form.Suspects) == 0 {
			return v, output(formatter.StyleYellow.Render("Add at least one suspect before continuing."))
		}
		if form.Navigation.FromSuspectSummary {
			nav := form.Navigation
			nav.FromSuspectSummary = false
			store.Dispatch(wizard.SetNavigationData{Navigation: nav})
		}
		return v, navigateFrom(from, journey.NextCaseRoute(journey.StepSuspectSummary))
	case "esc":
		if n := len(form.Suspects); n > 0 {
			return v, navigateFrom(from, journey.LastRoute(form.Suspects[n-1].Categories(), n-1))
		}
		return v, navigateFrom(from, journey.SuspectRoute(journey.StepAddSuspect, 0))
	}
	return v, nil
}

func (v *suspectSummaryView) View() string {
	form := v.state.Store.State().FormData
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Suspects") + "\n\n")
	if len(form.Suspects) == 0 {
		b.WriteString("  " + formatter.Dim("No suspects added yet. Press a to add one.") + "\n")
		return b.String()
	}
	lines := make([]string, len(form.Suspects))
	for i, sp := range form.Suspects {
		details := "no additional details"
		if cats := sp.Categories(); len(cats) > 0 {
			details = strings.Join(domain.CategoryLabels(cats), ", ")
		}
		lines[i] = fmt.Sprintf("%d. %s  %s", i+1, wizard.SuspectDisplayName(sp), formatter.Dim("("+details+")"))
	}
	b.WriteString(renderCursorList(lines, v.cursor))
	return b.String()
}

func (v *suspectSummaryView) ID() ViewID    { return ViewSuspectSummary }
func (v *suspectSummaryView) Title() string { return "Suspects" }
func (v *suspectSummaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("a", "add"),
		binding("e", "edit"),
		binding("x", "remove"),
		binding("c", "continue"),
		binding("esc", "back"),
	}
}

// ── charges summary ──────────────────────────────────────────────────────────

// chargeRef addresses one charge in the flattened charges list.
type chargeRef struct {
	suspectID string
	chargeID  string
	label     string
}

type chargesSummaryView struct {
	state  *SharedState
	cursor int
}

func newChargesSummaryView(state *SharedState) *chargesSummaryView {
	return &chargesSummaryView{state: state}
}

func (v *chargesSummaryView) charges() []chargeRef {
	var out []chargeRef
	for _, g := range wizard.ChargesPerSuspect(v.state.Store.State().FormData) {
		for _, c := range g.Charges {
			out = append(out, chargeRef{suspectID: g.SuspectID, chargeID: c.ChargeID, label: g.Name + ": " + c.Offence})
		}
	}
	return out
}

func (v *chargesSummaryView) Init() tea.Cmd { return nil }

func (v *chargesSummaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	store := v.state.Store
	charges := v.charges()
	from := journey.StepChargesSummary

	switch keyMsg.String() {
	case "up", "k", "down", "j":
		v.cursor = moveCursor(v.cursor, len(charges), keyMsg.String())
	case "a":
		return v, navigateFrom(from, journey.CaseRoute(journey.StepAddCharge))
	case "x":
		if v.cursor >= len(charges) {
			return v, nil
		}
		c := charges[v.cursor]
		return v, confirmCmd(v.state, "Remove charge", "Remove "+c.label+"?", func() tea.Cmd {
			store.Dispatch(wizard.RemoveSuspectCharge{SuspectID: c.suspectID, ChargeID: c.chargeID})
			v.cursor = max(min(v.cursor, len(charges)-2), 0)
			return output(formatter.Dim("Removed charge."))
		})
	case "c", "enter":
		if missing := wizard.SuspectsWithoutCharges(store.State().FormData); len(missing) > 0 {
			return v, output(formatter.StyleYellow.Render("Add a charge for " + strings.Join(missing, ", ") + " before continuing."))
		}
		return v, navigateFrom(from, journey.NextCaseRoute(journey.StepChargesSummary))
	case "esc":
		return v, navigateFrom(from, journey.PreviousCaseRoute(journey.StepChargesSummary))
	}
	return v, nil
}

func (v *chargesSummaryView) View() string {
	form := v.state.Store.State().FormData
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Charges") + "\n\n")
	b.WriteString(formatter.FormatChargesTree(form))

	if charges := v.charges(); len(charges) > 0 {
		labels := make([]string, len(charges))
		for i, c := range charges {
			labels[i] = c.label
		}
		b.WriteString("\n" + renderCursorList(labels, v.cursor))
	}
	if missing := wizard.SuspectsWithoutCharges(form); len(missing) > 0 {
		b.WriteString("\n  " + formatter.StyleYellow.Render("No charges yet for "+strings.Join(missing, ", ")) + "\n")
	}
	return b.String()
}

func (v *chargesSummaryView) ID() ViewID    { return ViewChargesSummary }
func (v *chargesSummaryView) Title() string { return "Charges" }
func (v *chargesSummaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("a", "add"),
		binding("x", "remove"),
		binding("c", "continue"),
		binding("esc", "back"),
	}
}

// ── case summary ─────────────────────────────────────────────────────────────

// summarySections maps the number keys on the case summary to the page that
// changes that section.
var summarySections = []struct {
	key   string
	label string
	route journey.Route
}{
	{"1", "area", journey.CaseRoute(journey.StepCaseArea)},
	{"2", "details", journey.CaseRoute(journey.StepCaseDetails)},
	{"3", "hearing", journey.CaseRoute(journey.StepFirstHearing)},
	{"4", "suspects", journey.CaseRoute(journey.StepSuspectSummary)},
	{"5", "charges", journey.CaseRoute(journey.StepChargesSummary)},
	{"6", "assignee", journey.CaseRoute(journey.StepCaseAssignee)},
	{"7", "investigator", journey.CaseRoute(journey.StepInvestigator)},
	{"8", "codes", journey.CaseRoute(journey.StepMonitoringCodes)},
}

type caseSummaryView struct {
	state *SharedState
	vp    viewport.Model
}

func newCaseSummaryView(state *SharedState) *caseSummaryView {
	v := &caseSummaryView{state: state}
	v.vp = viewport.New(max(state.Width, 20), state.ContentHeight())
	v.refresh()
	return v
}

func (v *caseSummaryView) refresh() {
	v.vp.SetContent(formatter.FormatCaseSummary(v.state.Store.State(), v.state.App.now()))
}

func (v *caseSummaryView) Init() tea.Cmd { return nil }

func (v *caseSummaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.refresh()
		return v, nil
	case tea.KeyMsg:
		from := journey.StepCaseSummary
		k := msg.String()
		for _, s := range summarySections {
			if k == s.key {
				nav := v.state.Store.State().FormData.Navigation
				nav.FromCaseSummary = true
				v.state.Store.Dispatch(wizard.SetNavigationData{Navigation: nav})
				return v, navigateFrom(from, s.route)
			}
		}
		switch k {
		case "enter", "s":
			form := v.state.Store.State().FormData
			if len(form.Suspects) == 0 {
				return v, output(formatter.StyleYellow.Render("Add at least one suspect before submitting."))
			}
			if missing := wizard.SuspectsWithoutCharges(form); len(missing) > 0 {
				return v, output(formatter.StyleYellow.Render("Add a charge for " + strings.Join(missing, ", ") + " before submitting."))
			}
			return v, navigateFrom(from, journey.NextCaseRoute(journey.StepCaseSummary))
		case "esc":
			return v, navigateFrom(from, journey.PreviousCaseRoute(journey.StepCaseSummary))
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *caseSummaryView) View() string {
	return v.vp.View()
}

func (v *caseSummaryView) ID() ViewID    { return ViewCaseSummary }
func (v *caseSummaryView) Title() string { return "Case summary" }
func (v *caseSummaryView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("1-8", "change section"),
		binding("s", "submit"),
		binding("esc", "back"),
	}
}
