package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/config"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/dispatch"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/findbar"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/prefs"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Path      string
	TailLines int
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    logrus.FieldLogger
}

// session is the mutable search machinery shared by every copy of Model.
type session struct {
	loop       *dispatch.Loop
	nav        *findbar.Navigator
	pane       *logPane
	highlights *highlightRegistry
	scanArmed  bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	path      string
	tailLines int
	prefsPath string
	log       logrus.FieldLogger
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	loading  bool
	loadErr  error
	showHelp bool

	// Find bar
	find        textinput.Model
	findVisible bool
	findFocused bool

	s *session
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg.YieldBatch <= 0 {
		cfg.YieldBatch = search.DefaultBatch
	}

	loop := dispatch.NewLoop()
	pane := newLogPane()
	highlights := newHighlightRegistry(pane.invalidate)
	nav := findbar.NewNavigator(
		logsource.NewLines(nil),
		search.NewSentinel(loop, cfg.YieldBatch),
		findbar.Host{Viewport: pane, Highlighter: highlights},
		logger,
	)
	nav.SetMatchMode(cfg.MatchMode)

	ti := textinput.New()
	ti.Prompt = "Find: "
	ti.Placeholder = "text to search for"
	ti.CharLimit = 256
	ti.SetValue(opts.Prefs.LastQuery)

	return Model{
		ctx:         ctx,
		path:        opts.Path,
		tailLines:   opts.TailLines,
		prefsPath:   prefsPath,
		log:         logger.WithField("logger", "ui.window"),
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		loading:     opts.Path != "",
		find:        ti,
		findVisible: opts.Prefs.ShowFindBar,
		s: &session{
			loop:       loop,
			nav:        nav,
			pane:       pane,
			highlights: highlights,
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return loadSourceCmd(m.path, m.tailLines)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case sourceMsg:
		return m.handleSource(msg)

	case scanStepMsg:
		m.s.scanArmed = false
		m.s.loop.Iterate()
		return m, m.armScan()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.findFocused {
		return m.handleFindKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.s.pane.invalidate()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFind):
		cmd := m.openFind()
		return m, cmd

	case key.Matches(msg, m.keys.Dismiss):
		if m.findVisible {
			m.closeFind()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextMatch):
		m.gotoNext()

	case key.Matches(msg, m.keys.PrevMatch):
		m.gotoPrevious()

	case key.Matches(msg, m.keys.Down):
		m.s.pane.scrollBy(1)
		m.s.nav.ViewportMoved()

	case key.Matches(msg, m.keys.Up):
		m.s.pane.scrollBy(-1)
		m.s.nav.ViewportMoved()

	case key.Matches(msg, m.keys.PageDown):
		m.s.pane.pageDown()
		m.s.nav.ViewportMoved()

	case key.Matches(msg, m.keys.PageUp):
		m.s.pane.pageUp()
		m.s.nav.ViewportMoved()

	case key.Matches(msg, m.keys.Top):
		m.s.pane.gotoTop()
		m.s.nav.ViewportMoved()

	case key.Matches(msg, m.keys.Bottom):
		m.s.pane.gotoBottom()
		m.s.nav.ViewportMoved()
	}

	return m, m.armScan()
}

// handleFindKey handles keyboard input while the find entry has focus.
func (m Model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.savePrefs()
		return m, tea.Quit

	case "ctrl+f", "esc":
		m.closeFind()
		return m, nil

	case "tab":
		// Leave the entry so plain keys scroll again
		m.findFocused = false
		m.find.Blur()
		return m, nil

	case "enter", "ctrl+n":
		m.gotoNext()
		return m, m.armScan()

	case "shift+tab", "ctrl+p":
		m.gotoPrevious()
		return m, nil
	}

	var cmd tea.Cmd
	m.find, cmd = m.find.Update(msg)
	if value := m.find.Value(); value != m.s.nav.Query() {
		m.s.nav.SetQuery(value)
	}
	return m, tea.Batch(cmd, m.armScan())
}

func (m Model) handleSource(msg sourceMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		m.s.pane.invalidate()
		m.log.WithError(msg.err).WithField("path", msg.path).Error("cannot load log")
		return m, nil
	}
	m.log.WithFields(logrus.Fields{"path": msg.path, "lines": msg.lines.Len()}).Info("log loaded")

	m.s.pane.setSource(msg.lines)
	m.s.nav.SetSource(msg.lines)
	if m.findVisible && m.find.Value() != "" {
		m.s.nav.SetQuery(m.find.Value())
	}
	return m, m.armScan()
}

// openFind shows and focuses the find bar, searching for any text it still
// holds.
func (m *Model) openFind() tea.Cmd {
	if !m.findVisible {
		m.findVisible = true
		m.layout()
	}
	m.findFocused = true
	cmd := m.find.Focus()
	if value := m.find.Value(); value != "" {
		m.s.nav.SetQuery(value)
	}
	return tea.Batch(cmd, m.armScan())
}

// closeFind hides the find bar. The query text is kept for the next open
// but its highlights and results are dropped.
func (m *Model) closeFind() {
	m.findVisible = false
	m.findFocused = false
	m.find.Blur()
	m.s.nav.Dismiss()
	m.layout()
}

func (m *Model) gotoNext() {
	if !m.s.nav.Sensitivity().Next {
		return
	}
	m.s.nav.GotoNext()
}

func (m *Model) gotoPrevious() {
	if !m.s.nav.Sensitivity().Prev {
		return
	}
	m.s.nav.GotoPrevious()
}

// layout sizes the log pane to what the chrome leaves free.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	// Header and status bar
	height := m.height - 2
	if m.findVisible {
		height--
	}
	m.s.pane.resize(m.width, height)
	m.find.Width = max(m.width-len(m.find.Prompt)-2, 1)
	m.s.nav.ViewportMoved()
}

// armScan schedules the next scan step if work is pending and no step is
// already queued.
func (m Model) armScan() tea.Cmd {
	if m.s.scanArmed || !m.s.loop.Pending() {
		return nil
	}
	m.s.scanArmed = true
	return scanStepCmd
}

func (m Model) savePrefs() {
	p := prefs.Prefs{
		Theme:       m.theme.Name,
		ShowFindBar: m.findVisible,
		LastQuery:   m.find.Value(),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("cannot save state")
	}
}

// Messages

// scanStepMsg runs one batch of the active search.
type scanStepMsg struct{}

type sourceMsg struct {
	path  string
	lines *logsource.Lines
	err   error
}

// Commands

func scanStepCmd() tea.Msg {
	return scanStepMsg{}
}

func loadSourceCmd(path string, tail int) tea.Cmd {
	return func() tea.Msg {
		var (
			lines *logsource.Lines
			err   error
		)
		if tail > 0 {
			lines, err = logsource.Tail(path, tail)
		} else {
			lines, err = logsource.Load(path)
		}
		return sourceMsg{path: path, lines: lines, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
