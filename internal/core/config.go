package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Length   int    // Current snake length
	Steps    uint64 // Snake moves since the last restart
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Reason   string // Why the game ended, empty while running
}

// Event is a notable thing that happened during a tick.
type Event int

const (
	EventAte Event = iota + 1
	EventCrash
	EventRestart
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether ev occurred during the tick.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}
