// Package repl implements the interactive teya session as a Bubble Tea
// program.
package repl

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teya-lang/teya/log"
	"github.com/teya-lang/teya/syntax"
	"github.com/teya-lang/teya/syntax/parser"
	"github.com/teya-lang/teya/syntax/source"
)

const prompt = "> "

func helpMessage() string {
	return `
Available commands:

  <term>         parse a term and print its canonical form
  :? :h :help    display this help text
  :q :quit       quit the session
  :t :type <term>  print the syntax tree of a term

Completions appear automatically as you type.
Press Tab / Shift-Tab to cycle through candidates.
Use Up/Down arrows for history navigation.
Press Ctrl+C on an empty line or Ctrl+D to exit.
`
}

// Styles.
//nolint:gochecknoglobals
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatEcho formats the echoed input line with prompt and input styled.
func formatEcho(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// Options configures a session.
type Options struct {
	// History is the path of the persistent history file.
	History string

	// Preload lists module files whose declared names seed completion.
	Preload []string
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	history := NewHistory(opts.History)
	if err := history.Load(); err != nil {
		log.WarnContext(ctx, "could not load history",
			slog.String("path", opts.History),
			slog.String("error", err.Error()),
		)
	}

	vocab := make([]string, 0, len(keywords)+len(commands))
	vocab = append(vocab, keywords...)
	vocab = append(vocab, commands...)
	vocab = append(vocab, preloadNames(ctx, opts.Preload)...)

	log.TraceContext(ctx, "repl start",
		slog.Int("history", history.Len()),
		slog.Int("vocabulary", len(vocab)),
	)

	m := newModel(ctx, history, vocab)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()

	return err
}

// preloadNames parses the given modules and collects every name their
// declarations introduce. Parse errors are logged, not fatal: a broken
// module still contributes the names of its intact declarations.
func preloadNames(ctx context.Context, paths []string) []string {
	var names []string

	seen := map[string]bool{}

	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			log.WarnContext(ctx, "could not read preload module",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)

			continue
		}

		m, errs := parser.ParseModuleString(path, string(content))

		if len(errs) > 0 {
			log.WarnContext(ctx, "preload module has syntax errors",
				slog.String("path", path),
				slog.Int("errors", len(errs)),
			)
		}

		mf, ok := m.(*syntax.ModuleFile)
		if !ok {
			continue
		}

		add(mf.Name.Name)

		for _, d := range mf.Decls {
			switch d := d.(type) {
			case *syntax.Claim:
				add(d.Name.Name)
			case *syntax.Definition:
				add(d.Name.Name)
			case *syntax.Import:
				add(d.Name.Name)

				if d.Rename != nil {
					add(d.Rename.Name)
				}
			}
		}
	}

	return names
}

const defaultWidth = 80

// model is the Bubble Tea model for the session.
type model struct {
	ctx          context.Context //nolint:containedctx
	input        textinput.Model
	history      *History
	historyIdx   int
	draft        string        // input saved while browsing history
	vocab        []string      // completion vocabulary
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
}

func newModel(ctx context.Context, history *History, vocab []string) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctx:        ctx,
		input:      ti,
		history:    history,
		historyIdx: history.Len(),
		vocab:      vocab,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)

		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		// Browsing history: show position.
		b.WriteString(hintStyle.Render(
			historyHint(m.historyIdx+1, m.history.Len())))
		b.WriteString("\n")

	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(hintStyle.Render(
			"Type a term, or :? for help"))
		b.WriteString("\n")

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width))
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

func historyHint(pos, total int) string {
	return strconv.Itoa(pos) + "/" + strconv.Itoa(total)
}

//nolint:cyclop
func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refreshMatches()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refreshMatches()

		return m, nil

	case tea.KeyTab:
		return m.cycleTab(1)

	case tea.KeyShiftTab:
		return m.cycleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refreshMatches()
		}

		return m, nil

	}

	// Runes, space, backspace, cursor movement, and anything else.
	// Typing accepts any tab candidate in place and resumes matching.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

func (m *model) refreshMatches() {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) cycleTab(dir int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	if len(m.matches) == 1 {
		m.replaceCurrentWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + dir + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if dir < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	m.replaceCurrentWord(m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input
// with the given replacement text and repositions the cursor.
func (m *model) replaceCurrentWord(replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx == 0 || m.history.Len() == 0 {
		return m, nil
	}

	if m.historyIdx == m.history.Len() {
		m.draft = m.input.Value()
	}

	m.historyIdx--
	m.input.SetValue(m.history.At(m.historyIdx))
	m.input.CursorEnd()
	m.tabActive = false
	m.refreshMatches()

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx >= m.history.Len() {
		return m, nil
	}

	m.historyIdx++

	if m.historyIdx == m.history.Len() {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history.At(m.historyIdx))
	}

	m.input.CursorEnd()
	m.tabActive = false
	m.refreshMatches()

	return m, nil
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	if err := m.history.Write(input); err != nil {
		log.WarnContext(m.ctx, "could not write history",
			slog.String("error", err.Error()),
		)
	}

	m.historyIdx = m.history.Len()
	m.draft = ""
	m.input.SetValue("")
	m.refreshMatches()

	log.TraceContext(m.ctx, "repl input",
		slog.String("input", input),
	)

	echo := tea.Println(formatEcho(input))

	file := source.NewFile("", input)
	cmd, errs := parser.ParseReplCommand(file)

	if len(errs) > 0 {
		lines := make([]string, 0, len(errs))
		for _, e := range errs {
			lines = append(lines,
				strings.TrimRight(e.Render(file), "\n"))
		}

		return m, tea.Sequence(echo, tea.Println(
			errorStyle.Render(strings.Join(lines, "\n"))))
	}

	switch cmd := cmd.(type) {
	case *syntax.ReplNoOp:
		return m, echo

	case *syntax.ReplHelp:
		return m, tea.Sequence(echo, tea.Println(
			hintStyle.Render(helpMessage())))

	case *syntax.ReplQuit:
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case *syntax.ReplEval:
		return m, tea.Sequence(echo, tea.Println(
			resultStyle.Render(syntax.FormatTerm(cmd.Term))))

	case *syntax.ReplTypeOf:
		dump := strings.TrimRight(syntax.Tree(cmd.Term), "\n")

		return m, tea.Sequence(echo, tea.Println(
			resultStyle.Render(dump)))

	default:
		return m, echo
	}
}
