package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzhdanov/dashline/internal/config"
	"github.com/mzhdanov/dashline/internal/core"
	"github.com/mzhdanov/dashline/internal/sim"
	"github.com/mzhdanov/dashline/internal/storage"
)

// crouchHoldTicks is how many ticks a crouch key press counts as held.
// Terminals deliver no key-release events, so a press opens a short hold
// window; keyboard autorepeat keeps refreshing it while the key is down.
const crouchHoldTicks = 12

// Options configures a game session.
type Options struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 means derive from the clock, reseeding on each restart
	Renderer Renderer
	Player   string // Recorded with runs; empty for local play
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Renderer: RenderANSI,
	}
}

// pendingInput accumulates key events between ticks and is flattened into a
// core.Input snapshot once per tick.
type pendingInput struct {
	jump        bool
	start       bool
	restart     bool
	crouchTicks int
}

func (p *pendingInput) snapshot() core.Input {
	return core.Input{
		Jump:    p.jump,
		Crouch:  p.crouchTicks > 0,
		Start:   p.start,
		Restart: p.restart,
	}
}

// clear drops the edge-triggered events and ages the crouch hold window.
func (p *pendingInput) clear() {
	p.jump = false
	p.start = false
	p.restart = false
	if p.crouchTicks > 0 {
		p.crouchTicks--
	}
}

// Model is the Bubble Tea model driving one runner session. It is the clock
// and input collaborator of the simulation: it measures real dt between
// ticks and hands the core a flat input snapshot.
type Model struct {
	game     *sim.Game
	cfg      config.RunnerConfig
	opts     Options
	screen   *core.Screen
	painter  *Painter
	store    *storage.Store
	seed     int64
	reseed   bool // Reseed each run when no fixed seed was requested
	input    pendingInput
	frame    sim.FrameOutput
	lastTick time.Time
	paused   bool
	quitting bool
	saved    bool
	best     int
}

// NewModel creates a model for the given validated config.
func NewModel(cfg config.RunnerConfig, store *storage.Store, opts Options) Model {
	seed := opts.Seed
	reseed := false
	if seed == 0 {
		seed = time.Now().UnixNano()
		reseed = true
	}
	if opts.Renderer == nil {
		opts.Renderer = RenderANSI
	}

	best := -1
	if store != nil {
		if b, err := store.BestScore(); err == nil {
			best = b
		}
	}

	m := Model{
		game:    sim.NewGame(cfg, seed),
		cfg:     cfg,
		opts:    opts,
		screen:  core.NewScreen(opts.ScreenW, opts.ScreenH),
		painter: NewPainter(cfg.World.Width, cfg.World.Height, cfg.World.GroundY),
		store:   store,
		seed:    seed,
		reseed:  reseed,
		best:    best,
	}
	m.frame = m.game.Advance(0, core.Input{})
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey maps key presses to pending input events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "up", "w":
		m.input.jump = true
	case "down", "s":
		m.input.crouchTicks = crouchHoldTicks
	case "enter":
		m.input.start = true
	case "r":
		m.input.restart = true
	case "p", "esc":
		if m.frame.Phase == sim.PhasePlaying {
			m.paused = !m.paused
		}
	}
	return m, nil
}

// handleTick advances the simulation by the real elapsed time. The core
// clamps oversized steps itself.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return m, tickCmd(m.opts.TickRate)
	}
	dt := now.Sub(m.lastTick).Seconds()
	m.lastTick = now

	if m.paused {
		return m, tickCmd(m.opts.TickRate)
	}

	in := m.input.snapshot()
	m.input.clear()

	// A fresh run gets a fresh seed unless the user pinned one.
	restarting := m.frame.Phase != sim.PhasePlaying && (in.Start || in.Restart)
	if restarting && m.reseed {
		m.seed = now.UnixNano()
		m.game.Reseed(m.seed)
	}
	if restarting {
		m.saved = false
	}

	m.frame = m.game.Advance(dt, in)

	if m.frame.Phase == sim.PhaseGameOver && !m.saved {
		m.saveRun()
		m.saved = true
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveRun records the finished run and refreshes the best score.
// Best-effort: the game continues regardless of storage errors.
func (m *Model) saveRun() {
	if m.frame.Score > m.best {
		m.best = m.frame.Score
	}
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.frame.Score, m.frame.Elapsed, m.seed, m.opts.Player)
}

// View paints the last frame and renders it with the injected backend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.painter.Paint(m.frame, m.screen, m.best)
	if m.paused {
		m.painter.paintOverlay(m.screen, "PAUSED", "Press P to resume")
	}
	return m.opts.Renderer(m.screen)
}

// Run starts a local Bubble Tea session for the runner.
func Run(cfg config.RunnerConfig, store *storage.Store, opts Options) error {
	model := NewModel(cfg, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
