package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const (
	// holdWindow keeps a movement key active after its last key event.
	// Terminals only report presses and auto-repeats, never releases.
	holdWindow = 180 * time.Millisecond

	// maxFrameDelta caps dt after a stall so the ball cannot tunnel.
	maxFrameDelta = 100 * time.Millisecond
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a breakout session.
type Model struct {
	game     *breakout.Game
	raster   *Rasterizer
	screen   *core.Screen
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     map[core.Action]time.Time
	pressed  core.InputFrame
	last     time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(s registry.Session) Model {
	cfg := s.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		game:    s.Game,
		raster:  NewRasterizer(),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
		last:    time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionLeft:
		delete(m.held, core.ActionRight)
		m.held[action] = now
	case action == core.ActionRight:
		delete(m.held, core.ActionLeft)
		m.held[action] = now
	case action != core.ActionNone:
		m.pressed.Set(action)
	}
	return m, nil
}

// input merges one-shot presses with movement keys still inside the hold window.
func (m *Model) input(now time.Time) core.InputFrame {
	in := m.pressed.Clone()
	for a, at := range m.held {
		if now.Sub(at) > holdWindow {
			delete(m.held, a)
			continue
		}
		if isHeld(a) {
			in.Set(a)
		}
	}
	return in
}

// handleTick advances the game by the wall-clock time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := min(now.Sub(m.last), maxFrameDelta)
	if dt < 0 {
		dt = 0
	}
	m.last = now

	m.game.Step(m.input(now), float32(dt.Seconds()))
	m.pressed.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.raster.Render(m.game.Frame(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(helpView), 1))
	m.screen.Clear()
	m.raster.Render(m.game.Frame(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program for the session.
func Run(s registry.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
