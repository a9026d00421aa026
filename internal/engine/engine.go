package engine

// Engine owns the authoritative snake session state. It is not safe for
// concurrent use; one loop drives it tick by tick.
type Engine struct {
	cfg    Config
	snake  Snake
	dir    Direction
	food   Position
	score  int
	state  State
	reason Reason
	ticks  uint64
}

// New validates cfg and returns an engine in its initial Running state.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	e.Reset()
	return e, nil
}

// Reset restores the initial state: head at the grid center facing right,
// the configured initial length, score zero, and food placed by probing from
// the origin.
func (e *Engine) Reset() {
	grid := e.cfg.Grid
	if e.snake.Cap() != grid.Capacity() {
		e.snake = newSnake(grid.Capacity())
	}
	e.dir = DirRight
	e.snake.reset(grid.Center(), e.cfg.InitialLength, e.dir, grid.BlockSize)
	e.score = 0
	e.state = StateRunning
	e.reason = ReasonNone
	e.ticks = 0
	e.food = Position{}
	e.SpawnFood()
}

// SetDirection replaces the current direction. Reversing straight into the
// neck is allowed and usually ends the game on the next Advance.
func (e *Engine) SetDirection(d Direction) {
	e.dir = d
}

// Key handles the one key the engine itself understands: restart after the
// game is over. It reports whether the engine was reset.
func (e *Engine) Key(ev KeyEvent) bool {
	if e.state != StateOver || !IsRestartKey(ev) {
		return false
	}
	e.Reset()
	return true
}

// Advance runs one simulation step. While the engine is over it does nothing
// and returns EventNone.
//
// Order matters: the body is shifted first, then the new head is checked
// against the walls, then against the food, and only then against the body.
// The food check precedes the self check because the head legitimately sits
// on the old food cell at that point.
func (e *Engine) Advance() Event {
	if e.state == StateOver {
		return EventNone
	}
	e.ticks++

	grid := e.cfg.Grid
	newHead := e.snake.Head().Step(e.dir, grid.BlockSize)
	e.snake.shift(newHead)

	// A step past row/column zero wrapped to a huge coordinate, so this one
	// comparison covers all four walls.
	if !grid.Contains(newHead) {
		e.end(ReasonWall)
		return EventWallCollision
	}

	ev := EventMoved
	if newHead == e.food {
		e.score++
		e.snake.grow()
		e.SpawnFood()
		ev = EventAte
	}

	for i := 1; i < e.snake.Len(); i++ {
		if e.snake.At(i) == newHead {
			e.end(ReasonSelf)
			return EventSelfCollision
		}
	}
	return ev
}

func (e *Engine) end(r Reason) {
	e.state = StateOver
	e.reason = r
}

// SpawnFood moves the food to the next free cell on its diagonal probe and
// returns the new position.
//
// The probe starts one row and one column past the current food (both modulo
// the grid extents) and keeps stepping diagonally while the candidate is
// occupied. Because row and column advance together, it only visits
// lcm(rows, cols) distinct cells. If all of those are occupied the search
// continues row-major over the whole grid from the last candidate. If the grid
// has no free cell the food stays where it is.
func (e *Engine) SpawnFood() Position {
	grid := e.cfg.Grid
	next := func(p Position) Position {
		return Position{
			Row: (p.Row + 1) % grid.Rows,
			Col: (p.Col + 1) % grid.Cols,
		}
	}

	candidate := next(e.food)
	period := lcm(int(grid.Rows), int(grid.Cols))
	for range period {
		if !e.snake.Occupies(candidate) {
			e.food = candidate
			return e.food
		}
		candidate = next(candidate)
	}

	cells := grid.Cells()
	start := int(candidate.Row)*int(grid.Cols) + int(candidate.Col)
	for k := range cells {
		idx := (start + k) % cells
		p := Position{Row: Coord(idx / int(grid.Cols)), Col: Coord(idx % int(grid.Cols))}
		if !e.snake.Occupies(p) {
			e.food = p
			return e.food
		}
	}
	return e.food
}

// IsOccupied reports whether p is covered by a live snake segment.
func (e *Engine) IsOccupied(p Position) bool {
	return e.snake.Occupies(p)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Grid returns the playing field geometry.
func (e *Engine) Grid() Grid { return e.cfg.Grid }

// Direction returns the current direction.
func (e *Engine) Direction() Direction { return e.dir }

// Food returns the food position.
func (e *Engine) Food() Position { return e.food }

// Score returns the number of food items eaten.
func (e *Engine) Score() int { return e.score }

// Length returns the live snake length.
func (e *Engine) Length() int { return e.snake.Len() }

// Capacity returns the maximum snake length.
func (e *Engine) Capacity() int { return e.snake.Cap() }

// Head returns the head segment. After a wall collision it holds the
// out-of-grid coordinate that ended the game.
func (e *Engine) Head() Position { return e.snake.Head() }

// Segments returns a copy of the live segments, head first.
func (e *Engine) Segments() []Position { return e.snake.Segments() }

// State returns Running or Over.
func (e *Engine) State() State { return e.state }

// Over reports whether the session has ended.
func (e *Engine) Over() bool { return e.state == StateOver }

// Reason returns why the session ended, or ReasonNone while running.
func (e *Engine) Reason() Reason { return e.reason }

// Ticks returns the number of effective Advance calls since the last reset.
func (e *Engine) Ticks() uint64 { return e.ticks }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
