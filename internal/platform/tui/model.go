package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/sound"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // Run ledger; nil disables history
	Logger *log.Logger    // nil discards log output
	Sound  sound.Player   // nil is silent
}

// bestSeeder is implemented by games that show a best score in their HUD.
type bestSeeder interface {
	SetBest(score int)
}

// Model is the Bubble Tea model for running a snake variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	sound      sound.Player
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	history    historyView
	inHistory  bool
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Sound
	if player == nil {
		player = sound.Nop{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		sound:      player,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		history:    newHistoryView(game.Title(), cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "variant", m.game.ID(),
		"width", m.config.ScreenW, "height", m.config.ScreenH, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inHistory {
		closeView, quit, cmd := m.history.update(msg)
		if quit {
			return m.quit()
		}
		if closeView {
			m.inHistory = false
		}
		return m, cmd
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	if action == core.ActionHistory {
		if m.gameState.GameOver {
			m.history.load(m.store, m.game.ID())
			m.inHistory = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("session stopped", "variant", m.game.ID(), "score", m.gameState.Score)
	return m, tea.Quit
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.history.resize(msg.Width, msg.Height)

	// Games that can re-layout keep their session; others restart
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The game keeps its state while the history is open
	if m.inHistory {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev {
		case core.EventRestart:
			m.runSaved = false
			m.logger.Info("restarted", "variant", m.game.ID())
		case core.EventAte:
			m.logger.Debug("ate", "score", m.gameState.Score, "length", m.gameState.Length)
		}
		m.sound.Play(ev)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run in the ledger. Failures are logged and
// otherwise ignored; the game continues regardless.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("game over", "variant", m.game.ID(), "score", st.Score,
		"length", st.Length, "reason", st.Reason, "steps", st.Steps)
	if m.store == nil {
		return
	}

	if _, err := m.store.RecordRun(storage.RunEntry{
		Variant: m.game.ID(),
		Score:   st.Score,
		Length:  st.Length,
		Reason:  st.Reason,
		Ticks:   st.Steps,
	}); err != nil {
		m.logger.Warn("cannot record run", "err", err)
		return
	}

	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read best score", "err", err)
		return
	}
	if g, ok := m.game.(bestSeeder); ok {
		g.SetBest(best)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inHistory {
		return m.history.view()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
