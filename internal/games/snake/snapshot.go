package snake

import "github.com/vovakirdan/tui-snake/internal/engine"

// Snapshot captures the adapter and engine state for determinism testing.
type Snapshot struct {
	Tick       uint64
	MoveEvery  int
	MoveTicker int
	Paused     bool
	TooSmall   bool
	Best       int
	Engine     engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		MoveEvery:  g.MoveEvery(),
		MoveTicker: g.moveTicker,
		Paused:     g.paused,
		TooSmall:   g.tooSmall,
		Best:       g.best,
		Engine:     g.eng.Snapshot(),
	}
}
