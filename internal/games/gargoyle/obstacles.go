package gargoyle

import (
	"math"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
)

// Pipe is a vertical obstacle pair with a passable gap between its halves.
type Pipe struct {
	X         float64 // Left edge of the sprite
	GapTop    float64 // Bottom edge of the upper half
	GapBottom float64 // Top edge of the lower half
	Passed    bool    // Credited to the score
	Spawned   uint64  // Tick on which the pipe appeared
}

// hitboxX returns the horizontal extent of the pipe's hitbox, which is
// narrower than the sprite and centered inside it.
func (p Pipe) hitboxX(params Params) (left, right float64) {
	inset := (params.PipeWidth - params.PipeHitboxWidth) / 2
	return p.X + inset, p.X + inset + params.PipeHitboxWidth
}

// Hits reports whether the actor box overlaps either half of the pipe.
// Horizontal overlap is strict: boxes that merely touch do not collide.
func (p Pipe) Hits(actor core.Box, params Params) bool {
	left, right := p.hitboxX(params)
	if !actor.OverlapsX(core.Box{Left: left, Right: right}) {
		return false
	}
	return actor.Top < p.GapTop || actor.Bottom > p.GapBottom
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes  []Pipe
	params Params
	rng    Rand
	height float64
	width  float64
}

// NewPipeManager creates a pipe manager for a viewport of the given size.
func NewPipeManager(params Params, rng Rand, width, height float64) *PipeManager {
	return &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		params: params,
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Reset clears all pipes and adopts a new viewport size.
func (pm *PipeManager) Reset(width, height float64) {
	pm.pipes = pm.pipes[:0]
	pm.width = width
	pm.height = height
}

// GapTop picks the top edge of a new gap. The gap keeps at least MinMargin
// of pipe above and below it. When the viewport is too short for that, the
// gap sits MinMargin from the top if it still fits below, is centered if
// only the gap fits, and is pinned to the top otherwise.
func (pm *PipeManager) GapTop() float64 {
	p := pm.params
	minTop := p.MinMargin
	maxTop := pm.height - p.GapHeight - p.MinMargin
	if maxTop > minTop {
		return minTop + math.Floor(pm.rng.Float64()*(maxTop-minTop))
	}
	if minTop+p.GapHeight <= pm.height {
		return minTop
	}
	if pm.height >= p.GapHeight {
		return math.Floor((pm.height - p.GapHeight) / 2)
	}
	return 0
}

// Spawn adds a pipe just beyond the right edge and returns it.
func (pm *PipeManager) Spawn(tick uint64) Pipe {
	top := pm.GapTop()
	pipe := Pipe{
		X:         pm.width,
		GapTop:    top,
		GapBottom: top + pm.params.GapHeight,
		Spawned:   tick,
	}
	pm.pipes = append(pm.pipes, pipe)
	return pipe
}

// Update moves every pipe left and checks it against the actor, oldest
// first. A collision stops the pass immediately and reports hit; passes
// credited earlier in the same pass are still returned.
func (pm *PipeManager) Update(actor core.Box, laneX float64) (passed int, hit bool) {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X -= pm.params.Speed

		if p.Hits(actor, pm.params) {
			return passed, true
		}

		if !p.Passed && p.X+pm.params.PipeWidth < laneX {
			p.Passed = true
			passed++
		}
	}

	// Remove pipes that have scrolled out of play
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+pm.params.PipeWidth >= -pm.params.CullMargin {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	return passed, false
}

// Pipes returns the live pipes, oldest first. The slice is owned by the
// manager; callers that keep it must copy.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
