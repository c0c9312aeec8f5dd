package gargoyle

// Actor is the player-controlled character.
type Actor struct {
	X        float64 // Center, fixed lane
	Y        float64 // Center
	Velocity float64
}

// Snapshot is a read-only copy of the engine state for painting and tests.
type Snapshot struct {
	Width, Height float64
	Actor         Actor
	Pipes         []Pipe
	Coins         []Coin
	Score         int
	Collected     int // Coins counted today
	DailyCap      int
	Tick          uint64
	Active        bool
}

// Snapshot copies the current state. Mutating the result does not affect
// the engine.
func (e *Engine) Snapshot() Snapshot {
	pipes := make([]Pipe, len(e.pipes.Pipes()))
	copy(pipes, e.pipes.Pipes())
	coins := make([]Coin, len(e.coinM.Coins()))
	copy(coins, e.coinM.Coins())

	return Snapshot{
		Width:  e.width,
		Height: e.height,
		Actor: Actor{
			X:        e.params.ActorLaneX,
			Y:        e.actorY,
			Velocity: e.actorVel,
		},
		Pipes:     pipes,
		Coins:     coins,
		Score:     e.score,
		Collected: e.coins,
		DailyCap:  e.dailyCap,
		Tick:      e.tick,
		Active:    e.active,
	}
}
