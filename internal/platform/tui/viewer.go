package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/antwalk/internal/ant"
	"github.com/vovakirdan/antwalk/internal/core"
	"github.com/vovakirdan/antwalk/internal/driver"
)

// ErrClosedEarly is returned by RunViewer when the viewer is closed before
// the walk finishes.
var ErrClosedEarly = errors.New("tui: viewer closed before the walk finished")

// simDoneMsg is sent when the background walk finishes or is interrupted.
type simDoneMsg struct {
	res driver.Result
	err error
}

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ViewerModel is the Bubble Tea model for the final-grid viewer.
// The walk runs to completion in the background first; only then is the
// grid drawn. Nothing reads the ant while the walk is in progress.
type ViewerModel struct {
	ctx       context.Context
	cancel    context.CancelFunc
	ant       *ant.Ant
	antConfig ant.Config
	observers []driver.Observer

	config   core.RuntimeConfig
	screen   *core.Screen
	viewport *Viewport
	keys     *KeyMapper
	help     help.Model
	spinner  spinner.Model

	result   driver.Result
	err      error
	done     bool
	quitting bool
}

// NewViewerModel creates a viewer that walks a to completion and then shows its grid.
// Cancelling ctx, or quitting, interrupts the walk.
func NewViewerModel(ctx context.Context, a *ant.Ant, cfg core.RuntimeConfig, observers ...driver.Observer) ViewerModel {
	ctx, cancel := context.WithCancel(ctx)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = progressStyle

	return ViewerModel{
		ctx:       ctx,
		cancel:    cancel,
		ant:       a,
		antConfig: a.Config(),
		observers: observers,
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:      NewKeyMapper(),
		help:      help.New(),
		spinner:   s,
	}
}

// Init starts the walk and the progress spinner.
func (m ViewerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.simulate())
}

// simulate returns a command that runs the walk off the UI goroutine.
func (m ViewerModel) simulate() tea.Cmd {
	ctx, a, observers := m.ctx, m.ant, m.observers
	return func() tea.Msg {
		res, err := driver.Run(ctx, a, observers...)
		return simDoneMsg{res: res, err: err}
	}
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case simDoneMsg:
		m.result = msg.res
		m.err = msg.err
		m.done = true
		w, h := m.gridArea()
		m.viewport = NewViewport(m.antConfig.Height, m.antConfig.Width, w, h)
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.cancel()
		m.quitting = true
		return m, tea.Quit
	}

	// Navigation only makes sense once there is a grid to look at
	if !m.done || m.viewport == nil {
		return m, nil
	}

	switch action {
	case core.ActionPanUp:
		m.viewport.Pan(-1, 0)
	case core.ActionPanDown:
		m.viewport.Pan(1, 0)
	case core.ActionPanLeft:
		m.viewport.Pan(0, -1)
	case core.ActionPanRight:
		m.viewport.Pan(0, 1)
	case core.ActionZoomIn:
		m.viewport.ZoomIn()
	case core.ActionZoomOut:
		m.viewport.ZoomOut()
	case core.ActionFit:
		m.viewport.Fit()
	case core.ActionCenter:
		m.viewport.CenterOn(m.result.Row, m.result.Col)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	}

	return m, nil
}

// gridArea returns the characters left for the grid below the status
// line and above the help.
func (m ViewerModel) gridArea() (width, height int) {
	helpLines := lipgloss.Height(m.help.View(m.keys.Keys()))
	return m.config.ScreenW, core.Max(0, m.config.ScreenH-1-helpLines)
}

func (m *ViewerModel) relayout() {
	if m.viewport != nil {
		m.viewport.Resize(m.gridArea())
	}
}

// status describes the finished walk and the current zoom.
func (m ViewerModel) status() string {
	res := m.result
	return fmt.Sprintf("%dx%d  steps %s  dark %s  ant (%d,%d) %s  1:%d",
		res.Config.Height, res.Config.Width,
		humanize.Comma(int64(res.Steps)),
		humanize.Comma(int64(res.DarkCells)),
		res.Row, res.Col, res.Heading,
		m.viewport.Scale(),
	)
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	if !m.done {
		return fmt.Sprintf("%s Walking a %dx%d grid from (%d,%d)...\n\n%s",
			m.spinner.View(),
			m.antConfig.Height, m.antConfig.Width,
			m.antConfig.StartRow, m.antConfig.StartCol,
			helpStyle.Render("q quit"),
		)
	}

	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n\n" + helpStyle.Render("q quit")
	}

	m.screen.Clear()
	m.screen.DrawText(0, 0, m.status(), core.ColorYellow)
	m.viewport.Draw(m.screen, m.ant.Grid(), m.result.Row, m.result.Col, 1)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// Result returns the walk result and whether the walk has finished.
func (m ViewerModel) Result() (driver.Result, bool) {
	return m.result, m.done
}

// Err returns the error that ended the walk, if any.
func (m ViewerModel) Err() error {
	return m.err
}

// IsQuitting returns true if the user asked to leave.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// RunViewer starts the Bubble Tea program for the viewer and blocks until it exits.
func RunViewer(ctx context.Context, a *ant.Ant, cfg core.RuntimeConfig, observers ...driver.Observer) (driver.Result, error) {
	model := NewViewerModel(ctx, a, cfg, observers...)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return driver.Result{}, err
	}

	m, ok := finalModel.(ViewerModel)
	if !ok {
		return driver.Result{}, nil
	}
	res, done := m.Result()
	if !done {
		return driver.Result{}, ErrClosedEarly
	}
	return res, m.Err()
}
