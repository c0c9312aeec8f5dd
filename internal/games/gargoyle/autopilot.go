package gargoyle

// Pilot decides, before each tick, whether to flap.
type Pilot func(snap Snapshot) bool

// Autopilot flaps whenever the actor is falling more than 20px below the
// middle of the next gap, or of the viewport when no pipe is ahead.
func Autopilot(p Params) Pilot {
	p = p.withDefaults()
	return func(snap Snapshot) bool {
		target := snap.Height / 2
		for _, pipe := range snap.Pipes {
			if pipe.X+p.PipeWidth >= snap.Actor.X-p.ActorHitbox {
				target = (pipe.GapTop + pipe.GapBottom) / 2
				break
			}
		}
		return snap.Actor.Y > target+20 && snap.Actor.Velocity > 0
	}
}

// FlapEvery flaps on every n-th tick. n <= 0 never flaps.
func FlapEvery(n int) Pilot {
	return func(snap Snapshot) bool {
		return n > 0 && snap.Tick%uint64(n) == 0
	}
}

// RunResult summarizes a headless session.
type RunResult struct {
	Ticks     uint64
	Score     int
	Collected int
	Flaps     int
	Over      bool
}

// Run drives an active session for at most maxTicks ticks, stopping early
// when it ends. A nil pilot never flaps.
func Run(e *Engine, maxTicks int, pilot Pilot) RunResult {
	var res RunResult
	for range maxTicks {
		if !e.IsActive() {
			break
		}
		if pilot != nil && pilot(e.Snapshot()) {
			e.ApplyImpulse()
			res.Flaps++
		}
		e.Tick()
	}
	res.Ticks = e.tick
	res.Score = e.Score()
	res.Collected = e.Coins()
	res.Over = !e.IsActive()
	return res
}
