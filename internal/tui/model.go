package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jpalmerr/serverboard/internal/dom"
	"github.com/jpalmerr/serverboard/internal/poller"
	"github.com/jpalmerr/serverboard/internal/view"
)

// Key bindings.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
	KeyRefresh = "r"
)

// Vertical space reserved around the card viewport.
const (
	headerHeight = 2
	footerHeight = 1
)

// Source delivers poll results. *poller.Scheduler implements it.
type Source interface {
	Results() <-chan poller.Result
	Refresh()
	Stop()
}

// resultMsg carries one poll result into the update loop.
type resultMsg poller.Result

// resultsClosedMsg signals that the source has stopped.
type resultsClosedMsg struct{}

// Model is the Bubble Tea model for the terminal board.
type Model struct {
	source     Source
	container  *dom.Element
	reconciler *view.Reconciler
	labels     view.Labels
	location   *time.Location
	title      string
	logger     *slog.Logger

	spinner       spinner.Model
	viewport      viewport.Model
	viewportReady bool
	width         int
	height        int

	ready      bool // a successful result has been reconciled
	lastCycle  uint64
	lastUpdate time.Time
	lastErr    string
	quitting   bool
}

// Option configures a [Model].
type Option func(*Model)

// WithTitle sets the header text.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithLabels sets the display vocabulary.
func WithLabels(labels view.Labels) Option {
	return func(m *Model) {
		m.labels = labels
	}
}

// WithLocation sets the time zone checked-at timestamps are shown in.
func WithLocation(loc *time.Location) Option {
	return func(m *Model) {
		m.location = loc
	}
}

// WithLogger sets the logger for poll failures. The terminal owns stdout, so
// the logger should write elsewhere.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a board that reconciles every result from source.
func NewModel(source Source, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	m := Model{
		source:  source,
		labels:  view.EnglishLabels(),
		title:   "Server Status",
		logger:  slog.Default(),
		spinner: sp,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.container = dom.New("section", "server-list", "")
	m.reconciler = view.NewReconciler(view.NewDOMSurface(m.container, m.labels),
		view.WithLabels(m.labels),
		view.WithLocation(m.location),
	)
	return m
}

// Container returns the reconciled card container.
func (m Model) Container() *dom.Element {
	return m.container
}

// Init starts the spinner and waits for the first result.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.source.Results()))
}

// waitForResult returns a command that blocks for the next result.
func waitForResult(results <-chan poller.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return resultsClosedMsg{}
		}
		return resultMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			m.source.Stop()
			return m, tea.Quit
		case KeyRefresh:
			m.source.Refresh()
			return m, nil
		}
		if m.viewportReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := max(m.height-headerHeight-footerHeight, 1)
		if !m.viewportReady {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.refreshContent()

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		m.handleResult(poller.Result(msg))
		return m, waitForResult(m.source.Results())

	case resultsClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleResult reconciles a successful result. A failed result is logged and
// leaves the cards untouched.
func (m *Model) handleResult(r poller.Result) {
	if r.Err != nil {
		m.logger.Warn("poll failed",
			"cycle", r.Cycle,
			"url", r.URL,
			"error", r.Err,
		)
		m.lastErr = r.Err.Error()
		return
	}

	stats := m.reconciler.Render(r.Servers)
	m.logger.Debug("view reconciled",
		"cycle", r.Cycle,
		"cards", stats.Cards,
		"created", stats.Created,
		"pruned", len(stats.Pruned),
	)

	m.ready = true
	m.lastCycle = r.Cycle
	m.lastUpdate = time.Now()
	m.lastErr = ""
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if m.viewportReady {
		m.viewport.SetContent(RenderView(m.container, m.width))
	}
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := HeaderStyle.Render(m.title) + "\n" + m.statusLine()
	footer := FooterStyle.Render("r refresh • ↑/↓ scroll • q quit")

	var body string
	switch {
	case !m.ready:
		body = StatusLineStyle.Render(m.spinner.View() + " waiting for first poll")
	case m.viewportReady:
		body = m.viewport.View()
	default:
		body = RenderView(m.container, m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) statusLine() string {
	if m.lastErr != "" {
		return ErrorLineStyle.Render("last poll failed: " + m.lastErr)
	}
	if !m.ready {
		return StatusLineStyle.Render("")
	}
	return StatusLineStyle.Render(fmt.Sprintf("cycle %d, updated %s", m.lastCycle, m.lastUpdate.Format("15:04:05")))
}
