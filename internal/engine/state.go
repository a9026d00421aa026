package engine

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Reason records why a session ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWall
	ReasonSelf
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Event is what a single Advance call produced.
type Event int

const (
	EventNone Event = iota // engine was already over
	EventMoved
	EventAte
	EventWallCollision
	EventSelfCollision
)

// Terminal reports whether the event ended the session.
func (e Event) Terminal() bool {
	return e == EventWallCollision || e == EventSelfCollision
}

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventWallCollision:
		return "wall_collision"
	case EventSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}
