package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/casereg/internal/cli/formatter"
	"github.com/alexanderramin/casereg/internal/domain"
	"github.com/alexanderramin/casereg/internal/journey"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandBar is the text input at the bottom of the TUI, focused with ':'.
// It runs the wizard's own commands and the read-only cobra subcommands.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

// barCommands are the commands the bar accepts, in help order.
var barCommands = []string{"goto", "reference", "submissions", "route", "help", "quit"}

// barSubcommands feeds second-word suggestions.
var barSubcommands = map[string][]string{
	"reference":   {"refresh", "list", "cache", "clear"},
	"submissions": {"list", "show"},
	"route":       {"next", "prev"},
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistory(state.App.HistoryPath)

	return commandBar{
		input:      ti,
		state:      state,
		history:    hist,
		historyIdx: len(hist),
	}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = max(w-len(promptPlain)-1, 10)
}

// Update handles key messages while the bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		c.Blur()
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.executeCommand(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.input.Reset()
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages such as cursor blink.
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

const promptPlain = "casereg > "

func (c *commandBar) View() string {
	prefix := formatter.StylePurple.Render("casereg") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prefix + formatter.Dim("press : to type a command")
	}
	return prefix + c.input.View()
}

// executeCommand runs one line typed into the bar.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	switch strings.ToLower(parts[0]) {
	case "goto", "go":
		route, err := resolveRouteInput(parts[1:])
		if err != nil {
			return output(commandError(err))
		}
		if route.Step == journey.StepConfirmation {
			return output(commandError(fmt.Errorf("submit from the case summary")))
		}
		return navigate(route)
	case "quit", "exit", "q":
		return func() tea.Msg { return quitMsg{} }
	case "help":
		return output(barHelp())
	case "register", "stub":
		return output(commandError(fmt.Errorf("%q cannot be run from inside the wizard", parts[0])))
	case "reference", "submissions", "route":
		app := c.state.App
		return func() tea.Msg {
			return cmdOutputMsg{output: captureCobraOutput(app, parts)}
		}
	}
	return output(commandError(fmt.Errorf("unknown command %q, type 'help' for the list", parts[0])))
}

func barHelp() string {
	rows := [][]string{
		{"goto STEP [N]", "jump to a page, e.g. 'goto suspect-gender 1' or 'goto case-summary'"},
		{"reference refresh|list|cache|clear", "inspect or reload reference data"},
		{"submissions list|show ID", "past submissions"},
		{"route next|prev --step S", "preview journey navigation"},
		{"help", "this list"},
		{"quit", "leave the wizard"},
	}
	return "\n" + formatter.RenderTable([]string{"COMMAND", "DESCRIPTION"}, rows)
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
	appendHistory(c.state.App.HistoryPath, line)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	parts := strings.Fields(text)
	if len(parts) == 0 {
		c.input.SetSuggestions(nil)
		return
	}
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		c.input.SetSuggestions(filterSuggestions(barCommands, parts[0]))
		return
	}
	if len(parts) > 2 || (len(parts) == 2 && trailingSpace) {
		c.input.SetSuggestions(nil)
		return
	}

	prefix := ""
	if len(parts) == 2 {
		prefix = parts[1]
	}
	cmd := strings.ToLower(parts[0])
	var pool []string
	switch cmd {
	case "goto":
		pool = stepIDs()
	default:
		pool = barSubcommands[cmd]
	}
	var out []string
	for _, s := range filterSuggestions(pool, prefix) {
		out = append(out, cmd+" "+s)
	}
	c.input.SetSuggestions(out)
}

func filterSuggestions(pool []string, prefix string) []string {
	var out []string
	for _, s := range pool {
		if strings.HasPrefix(s, strings.ToLower(prefix)) {
			out = append(out, s)
		}
	}
	return out
}

func stepIDs() []string {
	ids := []string{
		"case-area", "case-details", "first-hearing", "add-suspect",
		"suspect-dob", "suspect-gender", "suspect-disability", "suspect-religion",
		"suspect-ethnicity", "suspect-alias", "suspect-alias-summary", "suspect-sdo",
		"suspect-asn", "suspect-offender-type", "suspect-summary", "add-charge",
		"charges-summary", "case-assignee", "case-investigator",
		"case-monitoring-codes", "case-summary",
	}
	slices.Sort(ids)
	return ids
}

// referenceKindNames lists the kinds accepted by 'reference list'.
func referenceKindNames() []string {
	names := make([]string, len(domain.AllReferenceKinds))
	for i, k := range domain.AllReferenceKinds {
		names[i] = string(k)
	}
	return names
}
