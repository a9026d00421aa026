package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := newGame(VariantDefault, "Snake", config.DefaultSnakeConfig(), false)
	g.Reset(core.DefaultConfig())
	return g
}

// move steps the game until the engine advances once, pressing the given
// actions on the first tick. It returns every event seen on the way.
func move(t *testing.T, g *Game, actions ...core.Action) []core.Event {
	t.Helper()
	start := g.Engine().Ticks()
	var events []core.Event
	for i := 0; i < 100; i++ {
		input := core.NewInputFrame()
		if i == 0 {
			for _, a := range actions {
				input.Set(a)
			}
		}
		res := g.Step(input)
		events = append(events, res.Events...)
		if g.Engine().Ticks() != start || g.Engine().Over() {
			return events
		}
	}
	t.Fatal("engine did not advance within 100 ticks")
	return nil
}

func hasEvent(events []core.Event, ev core.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{VariantDefault, VariantVGA} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.Score != 0 || st.Length != 10 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected fresh running game", st)
	}
	if got := g.Engine().Head(); got != (engine.Position{Row: 10, Col: 20}) {
		t.Errorf("Head() = %v, expected (10,20)", got)
	}
	if g.tooSmall {
		t.Error("80x24 should fit the default 20x40 grid")
	}
}

func TestMovesOnCadence(t *testing.T) {
	g := newTestGame(t)
	every := g.MoveEvery()
	if every != 6 {
		t.Fatalf("MoveEvery() = %d, expected 6", every)
	}

	input := core.NewInputFrame()
	for i := 0; i < every-1; i++ {
		g.Step(input)
	}
	if g.Engine().Ticks() != 0 {
		t.Fatalf("engine advanced after %d ticks", every-1)
	}

	g.Step(input)
	if got := g.Engine().Head(); got != (engine.Position{Row: 10, Col: 21}) {
		t.Errorf("Head() = %v, expected (10,21)", got)
	}
}

func TestReversalCrashes(t *testing.T) {
	g := newTestGame(t)

	events := move(t, g, core.ActionLeft)
	if !hasEvent(events, core.EventCrash) {
		t.Errorf("events = %v, expected crash", events)
	}
	st := g.State()
	if !st.GameOver || st.Reason != "self" {
		t.Errorf("State() = %+v, expected game over by self collision", st)
	}
}

func TestEatFood(t *testing.T) {
	g := newTestGame(t)
	food := g.Engine().Food()
	if food != (engine.Position{Row: 1, Col: 1}) {
		t.Fatalf("Food() = %v, expected (1,1)", food)
	}

	var events []core.Event
	action := core.ActionUp
	for g.Engine().Head().Row > food.Row {
		events = append(events, move(t, g, action)...)
		action = core.ActionNone
	}
	action = core.ActionLeft
	for g.Engine().Head().Col > food.Col {
		events = append(events, move(t, g, action)...)
		action = core.ActionNone
	}

	if !hasEvent(events, core.EventAte) {
		t.Fatalf("events = %v, expected ate", events)
	}
	st := g.State()
	if st.Score != 1 || st.Length != 11 || st.GameOver {
		t.Errorf("State() = %+v, expected score 1, length 11, running", st)
	}
	if g.Best() != 1 {
		t.Errorf("Best() = %d, expected 1", g.Best())
	}
	if g.Engine().IsOccupied(g.Engine().Food()) {
		t.Error("new food spawned on the snake")
	}
}

func TestWallCrash(t *testing.T) {
	g := newTestGame(t)

	move(t, g, core.ActionUp)
	for !g.Engine().Over() {
		move(t, g)
	}
	if g.State().Reason != "wall" {
		t.Errorf("Reason = %q, expected wall", g.State().Reason)
	}

	// The head sits outside the grid now; rendering must clip it
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected Game Over overlay")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	// Ignored while running
	if res := g.Step(restart); res.Has(core.EventRestart) {
		t.Error("restart should be ignored while running")
	}

	move(t, g, core.ActionLeft)
	if !g.Engine().Over() {
		t.Fatal("expected game over")
	}

	res := g.Step(restart)
	if !res.Has(core.EventRestart) {
		t.Errorf("Events = %v, expected restart", res.Events)
	}
	if res.State.GameOver || res.State.Score != 0 || res.State.Length != 10 {
		t.Errorf("State = %+v, expected fresh game", res.State)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	if g.Engine().Ticks() != 0 {
		t.Error("engine advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
	move(t, g)
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	x, y, _ := g.cell(g.Engine().Head())
	if cell := screen.GetCell(x, y); cell.Rune != '@' || cell.Code != g.palette.Snake {
		t.Errorf("head cell = %+v, expected '@' with snake colors", cell)
	}
	x, y, _ = g.cell(g.Engine().Segments()[1])
	if got := screen.Get(x, y); got != '*' {
		t.Errorf("body cell = %q, expected '*'", got)
	}
	x, y, _ = g.cell(g.Engine().Food())
	if cell := screen.GetCell(x, y); cell.Rune != '*' || cell.Code != g.palette.Food {
		t.Errorf("food cell = %+v, expected '*' with food colors", cell)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD = %q, expected score", screen.Row(0))
	}
	if got := screen.Get(g.field.X, g.field.Y); got != '┌' {
		t.Errorf("box corner = %q, expected '┌'", got)
	}
}

func TestTooSmall(t *testing.T) {
	g := newGame(VariantDefault, "Snake", config.DefaultSnakeConfig(), false)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60})

	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	if g.Engine().Ticks() != 0 {
		t.Error("engine advanced on a too-small screen")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}

	g.Resize(80, 24)
	move(t, g)
}

func TestVGAVariant(t *testing.T) {
	g := newGame(VariantVGA, "Snake (VGA 80x25)", config.DefaultSnakeConfig(), true)
	g.Reset(core.RuntimeConfig{ScreenW: 82, ScreenH: 29, TickRate: 60})

	if g.tooSmall {
		t.Fatal("82x29 should fit the 25x80 grid")
	}
	if got := g.Engine().Grid(); got != engine.ClassicConfig().Grid {
		t.Errorf("Grid() = %+v, expected classic grid", got)
	}
	if got := g.Engine().Head(); got != (engine.Position{Row: 12, Col: 40}) {
		t.Errorf("Head() = %v, expected (12,40)", got)
	}

	move(t, g)
	if got := g.Engine().Head(); got != (engine.Position{Row: 12, Col: 42}) {
		t.Errorf("Head() = %v, expected (12,42) after one block step", got)
	}
}

func TestDifficultyShortensInterval(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "time", MaxAt: 5}
	g := newGame(VariantDefault, "Snake", cfg, false)
	g.Reset(core.DefaultConfig())

	for i := 0; i < 5; i++ {
		move(t, g)
	}
	if got := g.MoveEvery(); got != 2 {
		t.Errorf("MoveEvery() = %d, expected 2 at max difficulty", got)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	script := map[int]core.Action{20: core.ActionDown, 40: core.ActionLeft, 90: core.ActionUp}
	for i := 0; i < 200; i++ {
		input := core.NewInputFrame()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
