// Package ui is the interactive search screen: type a pattern, watch
// matches stream in, open the selection in an editor.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiral-sh/chiral/internal/config"
	"github.com/chiral-sh/chiral/internal/editor"
	"github.com/chiral-sh/chiral/internal/tool/grep"
)

// Scope names for the status line.
const (
	ScopeProject   = "project"
	ScopeDirectory = "directory"
)

// textSearcher runs text searches.
type textSearcher interface {
	Run(ctx context.Context, req *grep.SearchRequest) ([]grep.MatchEvent, error)
}

// startSearchMsg fires after the debounce delay.
type startSearchMsg struct {
	seq int
}

// resultsMsg carries a finished search back into the update loop.
type resultsMsg struct {
	seq     int
	matches []grep.MatchEvent
	err     error
}

// Model is the Bubble Tea model for the interactive search screen.
type Model struct {
	input textinput.Model
	spin  spinner.Model

	searcher textSearcher
	config   *config.Config
	editor   editor.Editor

	scope      string
	gitRoot    string
	currentDir string

	results   []grep.MatchEvent
	selected  int
	offset    int
	searching bool
	err       error

	// seq invalidates debounce ticks and in-flight searches when the
	// query changes underneath them.
	seq    int
	cancel context.CancelFunc

	width  int
	height int
}

// New creates the interactive model. gitRoot may be empty when the
// working directory is not inside a repository.
func New(searcher textSearcher, cfg *config.Config, ed editor.Editor, gitRoot, currentDir string) *Model {
	input := textinput.New()
	input.Placeholder = "pattern"
	input.Prompt = "search> "
	input.Focus()

	scope := ScopeDirectory
	if gitRoot != "" {
		scope = ScopeProject
	}

	return &Model{
		input:      input,
		spin:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		searcher:   searcher,
		config:     cfg,
		editor:     ed,
		scope:      scope,
		gitRoot:    gitRoot,
		currentDir: currentDir,
		selected:   -1,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startSearchMsg:
		return m.handleStartSearch(msg)

	case resultsMsg:
		return m.handleResults(msg)

	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.render()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "up":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
		return m, nil

	case "down":
		if m.selected < len(m.results)-1 {
			m.selected++
			m.adjustScroll()
		}
		return m, nil

	case "enter":
		if m.selected >= 0 && m.selected < len(m.results) {
			r := m.results[m.selected]
			_ = editor.Open(m.editor, r.Path(), r.LineNumber(), r.Column())
			return m, tea.Quit
		}
		return m, nil

	case "tab":
		// Toggle search scope; only meaningful inside a repository.
		if m.gitRoot == "" {
			return m, nil
		}
		if m.scope == ScopeProject {
			m.scope = ScopeDirectory
		} else {
			m.scope = ScopeProject
		}
		return m, m.triggerSearch()

	default:
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.triggerSearch())
		}
		return m, cmd
	}
}

// triggerSearch invalidates any in-flight search and schedules a new one
// after the debounce delay.
func (m *Model) triggerSearch() tea.Cmd {
	m.seq++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.selected = -1
	m.offset = 0
	m.err = nil

	if m.input.Value() == "" {
		m.results = nil
		m.searching = false
		return nil
	}

	seq := m.seq
	debounce := time.Duration(m.config.UI.DebounceMs) * time.Millisecond
	return tea.Tick(debounce, func(time.Time) tea.Msg {
		return startSearchMsg{seq: seq}
	})
}

func (m *Model) handleStartSearch(msg startSearchMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil // A newer query superseded this tick.
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.searching = true
	m.err = nil

	req := &grep.SearchRequest{
		Pattern:    m.input.Value(),
		SearchPath: m.searchPath(),
		SmartCase:  true,
	}

	seq := m.seq
	search := func() tea.Msg {
		matches, err := m.searcher.Run(ctx, req)
		return resultsMsg{seq: seq, matches: matches, err: err}
	}
	return m, tea.Batch(m.spin.Tick, search)
}

func (m *Model) handleResults(msg resultsMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil // Stale results from a superseded search.
	}

	m.searching = false
	m.cancel = nil

	if msg.err != nil {
		m.err = msg.err
		m.results = nil
		return m, nil
	}

	m.results = msg.matches
	if len(m.results) > 0 {
		m.selected = 0
		m.offset = 0
	}
	return m, nil
}

func (m *Model) searchPath() string {
	if m.scope == ScopeProject && m.gitRoot != "" {
		return m.gitRoot
	}
	return m.currentDir
}

// adjustScroll keeps the selected row inside the visible window.
func (m *Model) adjustScroll() {
	visible := m.config.UI.VisibleResults

	if len(m.results) <= visible {
		m.offset = 0
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visible {
		m.offset = m.selected - visible + 1
	}
	if maxOffset := len(m.results) - visible; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Start runs the Bubble Tea program until the user exits.
func (m *Model) Start() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
