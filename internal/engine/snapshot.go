package engine

// Snapshot captures the observable engine state for determinism testing and
// debugging.
type Snapshot struct {
	Ticks  uint64
	Score  int
	Length int
	Head   Position
	Dir    Direction
	Food   Position
	State  State
	Reason Reason
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ticks:  e.ticks,
		Score:  e.score,
		Length: e.snake.Len(),
		Head:   e.snake.Head(),
		Dir:    e.dir,
		Food:   e.food,
		State:  e.state,
		Reason: e.reason,
	}
}
