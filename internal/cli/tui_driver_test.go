package cli

import (
	"testing"

	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/alexanderramin/casereg/internal/teatest"
	"github.com/alexanderramin/casereg/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// TestDriver wraps teatest.Driver with casereg-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// command bar focus) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init(), which
// loads every reference list through the App's reference service.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Command focuses the command bar with ctrl+k, types the command, and
// presses Enter. ctrl+k works on every page, including form pages that keep
// ':' for their own inputs. The bar is blurred afterwards so later key
// presses reach the active view.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlK})
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

// Goto jumps straight to a route through the command bar.
func (d *TestDriver) Goto(r journey.Route) {
	d.T.Helper()
	d.Command("goto " + r.String())
}

// Dispatch applies actions to the wizard store directly, as a page would.
func (d *TestDriver) Dispatch(actions ...wizard.Action) *wizard.State {
	return d.State().Store.Dispatch(actions...)
}

// ── casereg-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Route returns the route of the page currently shown.
func (d *TestDriver) Route() journey.Route {
	return d.State().Route
}

// Wizard returns the current wizard state.
func (d *TestDriver) Wizard() *wizard.State {
	return d.State().Store.State()
}

// IsQuitting returns whether the app has signaled a quit.
// Checks model.quitting (ctrl+c and quitMsg) and the driver's Quitting flag
// (tea.QuitMsg from views returning tea.Quit).
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CmdBarFocused returns whether the command bar currently has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last multi-line output shown in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Notice returns the one-line message above the status bar.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// OutputActive reports whether the output viewport replaces the view.
func (d *TestDriver) OutputActive() bool {
	return d.appModel().outputActive
}
