// ============================================================================
// clite - Token Stream Interpreter
// ============================================================================
//
// Package:     traceviewer
// Description: Bubbletea model that runs a program and shows its trace
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package traceviewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/clite/foundation/clite"
	"github.com/msto63/clite/foundation/clite/interp"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	"github.com/msto63/clite/internal/runner"
	"github.com/msto63/clite/pkg/core/version"
)

// RunFunc executes the program, reporting events to tracer
type RunFunc func(ctx context.Context, tracer interp.Tracer) (*runner.Result, error)

// Config holds trace viewer configuration
type Config struct {
	// Title is shown in the header, usually the source path
	Title string

	// Run executes the program
	Run RunFunc

	// PollInterval controls how often new events are shown while running
	PollInterval time.Duration
}

// DefaultPollInterval is used when Config.PollInterval is zero
const DefaultPollInterval = 100 * time.Millisecond

// Model is the main Bubbletea model for the trace viewer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	running    bool
	autoScroll bool
	showOutput bool

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Trace state
	recorder   *interp.Recorder
	allEvents  []interp.Event
	filtered   []interp.Event
	kindFilter map[interp.Kind]bool

	// Outcome
	result *runner.Result
	err    error

	// Configuration
	title        string
	run          RunFunc
	pollInterval time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
}

// New creates a trace viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		spinner:      sp,
		running:      true,
		autoScroll:   true,
		recorder:     interp.NewRecorder(),
		kindFilter:   allKinds(),
		title:        cfg.Title,
		run:          cfg.Run,
		pollInterval: cfg.PollInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func allKinds() map[interp.Kind]bool {
	filter := make(map[interp.Kind]bool)
	for _, k := range interp.Kinds() {
		filter[k] = true
	}
	return filter
}

// Init starts the program
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startRun,
		m.tick(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.running {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tickMsg:
		if m.running {
			cmds = append(cmds, m.poll, m.tick())
		}

	case eventsMsg:
		m.setEvents(msg.events)

	case runDoneMsg:
		m.running = false
		m.result = msg.result
		m.err = msg.err
		m.setEvents(m.recorder.Events())
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancel()
		return m, tea.Quit

	case tea.KeyRunes:
		key := string(msg.Runes)
		switch key {
		case "1", "2", "3", "4", "5", "6":
			kind := interp.Kinds()[key[0]-'1']
			m.kindFilter[kind] = !m.kindFilter[kind]
			m.refresh()
			return m, nil

		case "0":
			m.kindFilter = allKinds()
			m.refresh()
			return m, nil

		case "q":
			m.cancel()
			return m, tea.Quit

		case "o":
			m.showOutput = !m.showOutput
			m.updateViewportContent()
			return m, nil

		case "a":
			m.autoScroll = !m.autoScroll
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
			return m, nil

		case "g":
			m.viewport.GotoTop()
			m.autoScroll = false
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			m.autoScroll = true
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		m.autoScroll = false
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		m.autoScroll = false
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading trace..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(EventPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// Result returns the outcome of the run once it finished
func (m Model) Result() (*runner.Result, error) {
	return m.result, m.err
}

// Running reports whether the program is still executing
func (m Model) Running() bool {
	return m.running
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.title),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderFilterBar() string {
	kinds := interp.Kinds()
	filters := make([]string, len(kinds))
	for i, k := range kinds {
		filters[i] = fmt.Sprintf("%d:%s", i+1, RenderFilterStatus(k.String(), m.kindFilter[k]))
	}

	content := strings.Join(filters, "  ") + "  " +
		HelpDescStyle.Render(fmt.Sprintf("[%d/%d events]", len(m.filtered), len(m.allEvents)))
	if m.showOutput {
		content += "  " + FilterActiveStyle.Render("[output]")
	}
	if m.autoScroll {
		content += "  " + FilterActiveStyle.Render("[auto-scroll]")
	}
	return FilterBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("Events: %d", len(m.allEvents)))
	center := HelpDescStyle.Render("v" + version.Viewer)

	var right string
	switch {
	case m.running:
		right = m.spinner.View() + " " + StatusRunningStyle.Render("running")
	case m.err != nil:
		right = StatusFailedStyle.Render(clite.Describe(m.err))
	default:
		right = StatusOKStyle.Render("ok")
		if m.result != nil {
			right += " " + HelpDescStyle.Render(m.result.Duration.Round(time.Microsecond).String())
		}
	}

	available := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 4
	if available < 2 {
		available = 2
	}
	leftPadding := available / 2

	content := left + strings.Repeat(" ", leftPadding) + center + strings.Repeat(" ", available-leftPadding) + right
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-6", "Kind"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("o", "Output"),
		RenderKeyHint("a", "AutoScroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

func (m *Model) setEvents(events []interp.Event) {
	m.allEvents = events
	m.refresh()
}

func (m *Model) refresh() {
	m.applyFilters()
	m.updateViewportContent()
}

func (m *Model) applyFilters() {
	m.filtered = make([]interp.Event, 0, len(m.allEvents))
	for _, e := range m.allEvents {
		if m.kindFilter[e.Kind] {
			m.filtered = append(m.filtered, e)
		}
	}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	if m.showOutput {
		if m.result != nil {
			content.WriteString(OutputStyle.Render(m.result.Output))
		}
	} else {
		for _, e := range m.filtered {
			content.WriteString(renderEvent(e))
			content.WriteString("\n")
		}
	}

	m.viewport.SetContent(content.String())
	if m.autoScroll {
		m.viewport.GotoBottom()
	}
}

// renderEvent formats one event as [POSITION] KIND text
func renderEvent(e interp.Event) string {
	text := strings.TrimSpace(strings.TrimPrefix(e.String(), fmt.Sprintf("#%-4d %-7s", e.Position, e.Kind)))

	textStyle := EventTextStyle
	if !e.Executed {
		textStyle = SkippedStyle
	}
	return fmt.Sprintf("%s %s %s",
		PositionStyle.Render(fmt.Sprintf("#%-4d", e.Position)),
		RenderKindBadge(e.Kind),
		textStyle.Render(text))
}

// startRun executes the program in the command goroutine
func (m Model) startRun() tea.Msg {
	if m.run == nil {
		return runDoneMsg{}
	}
	result, err := m.run(m.ctx, m.recorder)
	return runDoneMsg{result: result, err: err}
}

func (m Model) poll() tea.Msg {
	return eventsMsg{events: m.recorder.Events()}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the trace viewer and returns the outcome of the program
func Run(cfg Config) (*runner.Result, error) {
	final, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	if m.running {
		m.cancel()
		return nil, mdwerror.New("trace viewer closed before the program finished").
			WithCode(mdwerror.CodeCanceled)
	}
	return m.Result()
}
