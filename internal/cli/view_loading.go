package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// loadingView fetches every reference list before the first page is shown.
// Each list is dispatched into the store as soon as it arrives.
type loadingView struct {
	state   *SharedState
	spinner spinner.Model
	pending map[domain.ReferenceKind]bool
	results []*service.ReferenceResult
	errs    map[domain.ReferenceKind]error
}

func newLoadingView(state *SharedState) *loadingView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader
	return &loadingView{state: state, spinner: sp}
}

func (v *loadingView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.loadAll())
}

func (v *loadingView) loadAll() tea.Cmd {
	v.pending = make(map[domain.ReferenceKind]bool, len(domain.AllReferenceKinds))
	v.errs = make(map[domain.ReferenceKind]error)
	v.results = nil

	cmds := make([]tea.Cmd, 0, len(domain.AllReferenceKinds))
	for _, kind := range domain.AllReferenceKinds {
		v.pending[kind] = true
		cmds = append(cmds, loadReferenceCmd(v.state.App, kind))
	}
	return tea.Batch(cmds...)
}

func loadReferenceCmd(app *App, kind domain.ReferenceKind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := app.requestContext()
		defer cancel()
		result, err := app.References.Load(ctx, kind)
		return referenceLoadedMsg{kind: kind, result: result, err: err}
	}
}

func (v *loadingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case referenceLoadedMsg:
		delete(v.pending, msg.kind)
		if msg.err != nil {
			v.errs[msg.kind] = msg.err
		} else {
			v.state.Store.Dispatch(msg.result.Action)
			v.results = append(v.results, msg.result)
		}
		if len(v.pending) > 0 || len(v.errs) > 0 {
			return v, nil
		}
		cmds := []tea.Cmd{navigate(v.state.Route)}
		if stale := staleCount(v.results); stale > 0 {
			cmds = append(cmds, output(formatter.StyleYellow.Render(
				fmt.Sprintf("Gateway unavailable, %d list(s) served from an expired cache.", stale))))
		}
		return v, tea.Sequence(cmds...)

	case spinner.TickMsg:
		if len(v.pending) == 0 {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if len(v.pending) > 0 || len(v.errs) == 0 {
			return v, nil
		}
		switch msg.String() {
		case "r":
			return v, tea.Batch(v.spinner.Tick, v.loadAll())
		case "q", "esc":
			return v, tea.Quit
		}
	}
	return v, nil
}

func staleCount(results []*service.ReferenceResult) int {
	n := 0
	for _, r := range results {
		if r.Stale {
			n++
		}
	}
	return n
}

func (v *loadingView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if len(v.pending) > 0 {
		done := len(domain.AllReferenceKinds) - len(v.pending)
		b.WriteString(fmt.Sprintf("  %s Loading reference data (%d/%d)\n",
			v.spinner.View(), done, len(domain.AllReferenceKinds)))
		return b.String()
	}
	if len(v.errs) == 0 {
		return b.String()
	}
	b.WriteString("  " + formatter.StyleRed.Render("Could not load reference data:") + "\n\n")
	for _, kind := range domain.AllReferenceKinds {
		if err, ok := v.errs[kind]; ok {
			b.WriteString(fmt.Sprintf("  %s %s\n", formatter.StyleRed.Render("✖ "+string(kind)), formatter.Dim(err.Error())))
		}
	}
	b.WriteString("\n  " + formatter.Dim("Press r to retry or q to quit.") + "\n")
	return b.String()
}

func (v *loadingView) ID() ViewID    { return ViewLoading }
func (v *loadingView) Title() string { return "Loading" }
func (v *loadingView) ShortHelp() []key.Binding {
	return []key.Binding{
		binding("r", "retry"),
		binding("q", "quit"),
	}
}
