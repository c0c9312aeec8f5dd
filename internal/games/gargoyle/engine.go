// Package gargoyle implements Flappy Gargoyle: a side-scrolling flyer that
// threads a gargoyle through pipe gaps and picks up coins under a daily cap.
//
// The Engine is pure simulation. It knows nothing about terminals, windows
// or storage; hosts drive it with Tick and ApplyImpulse and observe it
// through Events and Snapshot.
package gargoyle

import (
	"math/rand"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
)

// DefaultViewportHeight is used when Start receives a non-positive height.
const DefaultViewportHeight = 600.0

// Rand is the randomness source consumed by the engine.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Events receives session notifications. Nil callbacks are skipped.
type Events struct {
	CoinCollected func()
	GameOver      func(score int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the randomness source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithParams overrides the default tuning.
func WithParams(p Params) Option {
	return func(e *Engine) {
		e.params = p.withDefaults()
	}
}

// WithDailyCap sets the maximum coins countable per day. Zero disables coins.
func WithDailyCap(limit int) Option {
	return func(e *Engine) {
		if limit < 0 {
			limit = 0
		}
		e.dailyCap = limit
	}
}

// Engine simulates one play session at a time.
type Engine struct {
	params   Params
	rng      Rand
	dailyCap int

	width, height float64
	actorY        float64 // Actor center
	actorVel      float64
	tick          uint64
	score         int
	coins         int // Coins counted today, including this session
	active        bool
	events        Events

	pipes *PipeManager
	coinM *CoinManager
}

// NewEngine creates an idle engine. Call Start to begin a session.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		params:   DefaultParams(),
		rng:      rand.New(rand.NewSource(1)),
		dailyCap: 10,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.pipes = NewPipeManager(e.params, e.rng, 0, 0)
	e.coinM = NewCoinManager(e.params)
	return e
}

// Params returns the engine's tuning.
func (e *Engine) Params() Params {
	return e.params
}

// DailyCap returns the coin limit.
func (e *Engine) DailyCap() int {
	return e.dailyCap
}

// Start begins a fresh session in a viewport of the given size. Any previous
// session is discarded without firing its callbacks.
func (e *Engine) Start(width, height float64, collectedSoFar int, events Events) {
	if !core.IsFinite(width) || width < 0 {
		width = 0
	}
	if !core.IsFinite(height) || height <= 0 {
		height = DefaultViewportHeight
	}
	if collectedSoFar < 0 {
		collectedSoFar = 0
	}

	e.width = width
	e.height = height
	e.actorY = height / 2
	e.actorVel = 0
	e.tick = 0
	e.score = 0
	e.coins = collectedSoFar
	e.events = events
	e.active = true

	e.pipes.Reset(width, height)
	e.coinM.Reset()
}

// ApplyImpulse replaces the actor's vertical velocity with the flap impulse.
func (e *Engine) ApplyImpulse() {
	if !e.active {
		return
	}
	e.actorVel = e.params.Impulse
}

// IsActive reports whether a session is running.
func (e *Engine) IsActive() bool {
	return e.active
}

// Score returns the obstacles passed this session.
func (e *Engine) Score() int {
	return e.score
}

// Coins returns the coins counted today, including this session.
func (e *Engine) Coins() int {
	return e.coins
}

// Tick advances the simulation by one fixed step.
func (e *Engine) Tick() {
	if !e.active {
		return
	}
	p := e.params

	e.actorVel += p.Gravity
	if !core.IsFinite(e.actorVel) {
		e.actorVel = 0
	}
	e.actorY += e.actorVel
	if !core.IsFinite(e.actorY) {
		e.actorY = e.height / 2
	}
	e.tick++

	half := p.ActorHitbox / 2
	if e.actorY+half > e.height || e.actorY-half < 0 {
		e.end()
		return
	}

	if e.tick%uint64(p.SpawnEvery) == 0 {
		e.spawn()
	}

	passed, hit := e.pipes.Update(e.actorBox(), p.ActorLaneX)
	e.score += passed
	if hit {
		e.end()
		return
	}

	room := e.dailyCap - e.coins
	if room > 0 {
		n := e.coinM.Update(p.ActorLaneX, e.actorY, room)
		for i := 0; i < n; i++ {
			e.coins++
			if e.events.CoinCollected != nil {
				e.events.CoinCollected()
			}
		}
	} else {
		e.coinM.Reset()
	}
}

// spawn adds an obstacle and, while under the cap, maybe a coin in its gap.
func (e *Engine) spawn() {
	pipe := e.pipes.Spawn(e.tick)
	if e.coins >= e.dailyCap {
		return
	}
	if e.rng.Float64() < e.params.CoinChance {
		e.coinM.Place(pipe, e.width)
	}
}

func (e *Engine) actorBox() core.Box {
	size := e.params.ActorHitbox
	return core.BoxAround(e.params.ActorLaneX, e.actorY, size, size)
}

// end terminates the session and notifies the host exactly once.
func (e *Engine) end() {
	if !e.active {
		return
	}
	e.active = false
	if e.events.GameOver != nil {
		e.events.GameOver(e.score)
	}
}
