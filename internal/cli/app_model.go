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
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the wizard. The bottom of the
// view stack is the current page; overlays such as confirmations are pushed
// above it.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool

	// notice is a one-line message shown above the status bar until the
	// next key press.
	notice string

	// Multi-line command output is shown in a scrollable viewport in place
	// of the active view.
	lastOutput   string
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state:     state,
		cmdBar:    newCommandBar(state),
		outputVP:  vp,
		viewStack: []View{newLoadingView(state)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// viewForRoute builds the view for a wizard page. A suspect-scoped route
// whose suspect does not exist falls back to adding a new suspect, so the
// returned route may differ from the requested one.
func viewForRoute(state *SharedState, route journey.Route) (View, journey.Route) {
	s := state.Store.State()
	switch route.Step {
	case journey.StepSuspectSummary:
		return newSuspectSummaryView(state), route
	case journey.StepChargesSummary:
		return newChargesSummaryView(state), route
	case journey.StepCaseSummary:
		return newCaseSummaryView(state), route
	case journey.StepConfirmation:
		return newConfirmationView(state), route
	case journey.StepAliasSummary:
		if _, ok := resolveSuspect(s.FormData, route.SuspectIndex); ok {
			return newAliasSummaryView(state, route.SuspectIndex), route
		}
	}
	if page := pageFor(s, route); page != nil {
		return newStepView(state, route, page), route
	}
	fallback := journey.SuspectRoute(journey.StepAddSuspect, len(s.FormData.Suspects))
	return newStepView(state, fallback, addSuspectPage(s, fallback.SuspectIndex)), fallback
}

// navigateTo applies the case-summary return rule and swaps in the page for
// the resulting route.
func (m *appModel) navigateTo(msg navigateMsg) tea.Cmd {
	store := m.state.Store
	nav := store.State().FormData.Navigation

	route, reset := summaryRedirect(nav, msg.from, msg.route)
	if route.Step == journey.StepCaseSummary && (nav.FromCaseSummary || nav.FromSuspectSummary) {
		reset = true
	}
	if reset {
		store.Dispatch(wizard.SetNavigationData{Navigation: domain.NavigationData{}})
	}

	v, route := viewForRoute(m.state, route)
	m.state.Route = route
	m.viewStack = []View{v}
	m.cmdBar.Blur()
	m.clearOutput()
	return v.Init()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}

	case navigateMsg:
		return m, m.navigateTo(msg)

	case pushViewMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case cmdOutputMsg:
		m.showOutput(msg.output)
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.clearOutput()
		return m, msg.nextCmd

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		if _, ok := msg.(tea.KeyMsg); !ok {
			if cmd := m.cmdBar.UpdateNonKey(msg); cmd != nil {
				return m, cmd
			}
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// showOutput displays command or view output. Single lines become a notice;
// anything longer replaces the view in a scrollable viewport.
func (m *appModel) showOutput(s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	if !strings.Contains(s, "\n") {
		m.notice = s
		return
	}
	m.lastOutput = s
	m.outputActive = true
	m.outputVP.SetContent(s)
	m.outputVP.Width = m.state.Width
	m.outputVP.Height = m.state.ContentHeight()
	m.outputVP.GotoTop()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.cmdBar.Focused() {
		cmd := m.cmdBar.Update(msg)
		return m, cmd
	}

	m.notice = ""

	if msg.Type == tea.KeyCtrlK {
		m.clearOutput()
		m.cmdBar.Focus()
		return m, nil
	}

	// Scroll keys move the output viewport; any other key dismisses it and
	// is consumed, so the page beneath does not act on it.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		return m, nil
	}

	v := m.activeView()
	if v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	if msg.String() == ":" {
		m.cmdBar.Focus()
		return m, nil
	}

	if v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.outputActive {
		if m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	if m.notice != "" {
		sections = append(sections, "  "+m.notice)
	}
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the line-diff renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("casereg")

	var crumbs []string
	if m.state.Route.Step.SuspectScoped() {
		if sp, ok := resolveSuspect(m.state.Store.State().FormData, m.state.Route.SuspectIndex); ok {
			crumbs = append(crumbs, "Suspect "+fmt.Sprint(m.state.Route.SuspectIndex+1)+" ("+sp.DisplayName()+")")
		}
	}
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	if _, ok := m.activeView().(*loadingView); !ok {
		pos, total := journey.Progress(m.state.Route.Step)
		header += "  " + formatter.RenderProgress(pos, total, 12)
	}
	if urn := m.state.Store.State().FormData.URN(); urn != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(urn) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	switch {
	case m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height:
		hints = append(hints,
			scrollIndicator(m.outputVP),
			formatter.Dim("↑↓ pgup/pgdn: scroll"),
			formatter.Dim("any key: dismiss"),
		)
	case m.outputActive:
		hints = append(hints, formatter.Dim("any key: dismiss"))
	default:
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
			switch {
			case m.cmdBar.Focused():
				hints = append(hints, formatter.Dim("esc: close command bar"))
			case viewCapturesInput(v):
				hints = append(hints, formatter.Dim("ctrl+k: command"))
			default:
				hints = append(hints, formatter.Dim(": command"))
			}
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap restricts scrolling to arrow and page keys so letter
// keys stay free to dismiss the output.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

// viewCapturesInput reports whether the view's form should receive every
// key. The command bar is then reached with ctrl+k instead of ':'.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewStep, ViewForm:
		return true
	}
	return false
}
