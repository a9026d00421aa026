// Package snake adapts the snake engine to the platform's Game interface.
// It owns the tick cadence, pause state and rendering; every rule of the game
// itself lives in the engine.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	VariantDefault = "snake"
	VariantVGA     = "snake_vga"
)

const hudHeight = 2 // Status line plus separator

// Package-level configuration shared by every variant (like the difficulty
// preset pattern of the other frontends). Set before creating games.
var current = config.DefaultSnakeConfig()

// SetConfig replaces the configuration used by newly created games.
func SetConfig(cfg config.SnakeConfig) {
	current = cfg
}

// Config returns the configuration used by newly created games.
func Config() config.SnakeConfig {
	return current
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	id    string
	title string
	cfg   config.SnakeConfig
	ecfg  engine.Config

	eng        *engine.Engine
	palette    config.Palette
	difficulty *config.DifficultyManager

	tick       uint64
	moveTicker int
	best       int
	paused     bool
	tooSmall   bool

	screenW int
	screenH int
	field   core.Rect // Box around the grid, border included
}

// New creates the configurable variant.
func New() *Game {
	return newGame(VariantDefault, "Snake", current, false)
}

// NewVGA creates the classic 25x80 text-mode variant with two-cell blocks.
func NewVGA() *Game {
	return newGame(VariantVGA, "Snake (VGA 80x25)", current, true)
}

func newGame(id, title string, cfg config.SnakeConfig, classic bool) *Game {
	ecfg, err := cfg.EngineConfig()
	if err != nil || ecfg.Validate() != nil {
		cfg = config.DefaultSnakeConfig()
		ecfg, _ = cfg.EngineConfig()
	}
	if classic {
		ecfg = engine.ClassicConfig()
	}

	palette, err := cfg.Colors.Palette()
	if err != nil {
		palette, _ = config.DefaultSnakeConfig().Colors.Palette()
	}

	return &Game{
		id:         id,
		title:      title,
		cfg:        cfg,
		ecfg:       ecfg,
		palette:    palette,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func init() {
	registry.Register(VariantDefault, func() registry.Game {
		return New()
	})
	registry.Register(VariantVGA, func() registry.Game {
		return NewVGA()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Engine exposes the underlying engine for frontends and tests.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Reset initializes/restarts the game for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.eng == nil {
		eng, err := engine.New(g.ecfg)
		if err != nil {
			// newGame only keeps validated configurations
			panic(fmt.Sprintf("snake: %v", err))
		}
		g.eng = eng
	} else {
		g.eng.Reset()
	}
	g.tick = 0
	g.moveTicker = 0
	g.paused = false
	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// layout positions the field on the screen and flags screens that cannot hold it.
func (g *Game) layout(w, h int) {
	g.screenW = w
	g.screenH = h

	grid := g.ecfg.Grid
	boxW := int(grid.Cols) + 2
	boxH := int(grid.Rows) + 2
	g.tooSmall = w < boxW || h < boxH+hudHeight

	x := core.Clamp((w-boxW)/2, 0, max(0, w-boxW))
	g.field = core.NewRect(x, hudHeight, boxW, boxH)
}

// Resize updates the layout without restarting the session.
func (g *Game) Resize(w, h int) {
	g.layout(w, h)
}

// MoveEvery returns the current number of ticks between snake steps.
func (g *Game) MoveEvery() int {
	base := g.cfg.Timing.MoveEveryTicks
	if g.difficulty == nil {
		return max(1, base)
	}
	return g.difficulty.MoveEvery(base, g.eng.Score(), int(g.eng.Ticks()))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart goes through the engine, which ignores it unless the game is over
	if input.Has(core.ActionRestart) && g.eng.Key(engine.KeyEvent{Code: engine.KeyR}) {
		g.moveTicker = 0
		g.paused = false
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventRestart}}
	}

	if g.eng.Over() || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input); ok {
		g.eng.SetDirection(d)
	}

	var events []core.Event
	g.moveTicker++
	if g.moveTicker >= g.MoveEvery() {
		g.moveTicker = 0
		switch g.eng.Advance() {
		case engine.EventAte:
			g.best = max(g.best, g.eng.Score())
			events = append(events, core.EventAte)
		case engine.EventWallCollision, engine.EventSelfCollision:
			events = append(events, core.EventCrash)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// directionFor picks the direction requested this frame, if any.
func directionFor(input core.InputFrame) (engine.Direction, bool) {
	switch {
	case input.Has(core.ActionUp):
		return engine.DirUp, true
	case input.Has(core.ActionDown):
		return engine.DirDown, true
	case input.Has(core.ActionLeft):
		return engine.DirLeft, true
	case input.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return engine.DirRight, false
}

// SetBest seeds the best score shown in the HUD, e.g. from the run ledger.
func (g *Game) SetBest(score int) {
	g.best = max(g.best, score)
}

// Best returns the best score seen this session.
func (g *Game) Best() int {
	return g.best
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.field.W, g.field.H+hudHeight))
		return
	}

	dst.DrawBox(g.field, g.palette.Border)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.eng.Over():
		g.renderOverlay(dst, "Game Over: "+reasonText(g.eng.Reason()), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Length: %d",
		g.title, g.eng.Score(), g.best, g.eng.Length())
	dst.DrawText(0, 0, hud, g.palette.HUD)
	dst.DrawHLine(0, 1, dst.Width(), '─', g.palette.Border)
}

// cell converts a grid position to screen coordinates inside the box.
// Positions outside the grid (the head after a wall hit) report false.
func (g *Game) cell(p engine.Position) (int, int, bool) {
	if !g.ecfg.Grid.Contains(p) {
		return 0, 0, false
	}
	return g.field.X + 1 + int(p.Col), g.field.Y + 1 + int(p.Row), true
}

func (g *Game) renderFood(dst *core.Screen) {
	if x, y, ok := g.cell(g.eng.Food()); ok {
		dst.Plot(x, y, '*', g.palette.Food)
	}
}

// renderSnake draws tail first so the head wins on overlap.
func (g *Game) renderSnake(dst *core.Screen) {
	segs := g.eng.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		x, y, ok := g.cell(segs[i])
		if !ok {
			continue
		}
		r := '*'
		if i == 0 {
			r = '@'
		}
		dst.Plot(x, y, r, g.palette.Snake)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5

	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	if !g.tooSmall {
		area = g.field
	}
	cx, cy := area.Center()
	box := core.NewRect(
		core.Clamp(cx-boxW/2, 0, max(0, dst.Width()-boxW)),
		core.Clamp(cy-boxH/2, 0, max(0, dst.Height()-boxH)),
		boxW, boxH,
	)

	dst.FillRect(box, ' ', g.palette.HUD)
	dst.DrawBox(box, g.palette.HUD)
	dst.DrawText(box.X+(boxW-len([]rune(line1)))/2, box.Y+1, line1, g.palette.HUD)
	dst.DrawText(box.X+(boxW-len([]rune(line2)))/2, box.Y+3, line2, g.palette.HUD)
}

func reasonText(r engine.Reason) string {
	switch r {
	case engine.ReasonWall:
		return "hit the wall"
	case engine.ReasonSelf:
		return "bit itself"
	default:
		return r.String()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.eng.Score(),
		Length:   g.eng.Length(),
		Steps:    g.eng.Ticks(),
		GameOver: g.eng.Over(),
		Paused:   g.paused,
	}
	if g.eng.Over() {
		st.Reason = g.eng.Reason().String()
	}
	return st
}
