package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	ViewportW  float64 // Simulation viewport width in pixels
	ViewportH  float64 // Simulation viewport height in pixels
	TickRate   int     // Simulation ticks per second (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
	CoinsSoFar int     // Coins already collected today (host-owned)
	DailyCap   int     // Maximum coins per day (host policy)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ViewportW: 480,
		ViewportH: 384,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		DailyCap:  10,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Coins    int  // Coins collected today, including this session
	DailyCap int  // Daily coin cap the session runs under
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota + 1
	EventGameOver
)

// Event is emitted by a game during Step for the platform to act on.
type Event struct {
	Kind  EventKind
	Score int // Final score, set for EventGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind fired this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
