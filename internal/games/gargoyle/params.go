package gargoyle

// Default tuning. These values are part of the game's contract: tests and
// replays assume them unless a config file overrides them.
const (
	DefaultGravity         = 0.25 // Downward acceleration per tick
	DefaultImpulse         = -6.0 // Velocity set by a flap (negative = up)
	DefaultSpeed           = 2.5  // Horizontal scroll per tick
	DefaultGapHeight       = 170.0
	DefaultSpawnEvery      = 120 // Ticks between obstacle spawns
	DefaultCoinChance      = 0.06
	DefaultActorHitbox     = 16.0
	DefaultActorLaneX      = 30.0 // Fixed horizontal position of the actor center
	DefaultCoinSize        = 30.0
	DefaultPipeWidth       = 52.0
	DefaultPipeHitboxWidth = 40.0
	DefaultMinMargin       = 80.0 // Minimum pipe length above and below the gap
	DefaultCullMargin      = 50.0 // How far past the left edge entities live
	DefaultCoinSpawnOffset = 25.0 // Coins spawn this far right of the viewport edge
)

// Params holds the simulation tuning for one engine.
type Params struct {
	Gravity         float64
	Impulse         float64
	Speed           float64
	GapHeight       float64
	SpawnEvery      int
	CoinChance      float64
	ActorHitbox     float64
	ActorLaneX      float64
	CoinSize        float64
	PipeWidth       float64
	PipeHitboxWidth float64
	MinMargin       float64
	CullMargin      float64
	CoinSpawnOffset float64
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Gravity:         DefaultGravity,
		Impulse:         DefaultImpulse,
		Speed:           DefaultSpeed,
		GapHeight:       DefaultGapHeight,
		SpawnEvery:      DefaultSpawnEvery,
		CoinChance:      DefaultCoinChance,
		ActorHitbox:     DefaultActorHitbox,
		ActorLaneX:      DefaultActorLaneX,
		CoinSize:        DefaultCoinSize,
		PipeWidth:       DefaultPipeWidth,
		PipeHitboxWidth: DefaultPipeHitboxWidth,
		MinMargin:       DefaultMinMargin,
		CullMargin:      DefaultCullMargin,
		CoinSpawnOffset: DefaultCoinSpawnOffset,
	}
}

// withDefaults fills zero-valued sizes and cadences from DefaultParams so a
// partial config cannot produce a degenerate simulation. Gravity, impulse and
// coin chance may legitimately be zero and are left alone.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Speed <= 0 {
		p.Speed = d.Speed
	}
	if p.GapHeight <= 0 {
		p.GapHeight = d.GapHeight
	}
	if p.SpawnEvery <= 0 {
		p.SpawnEvery = d.SpawnEvery
	}
	if p.ActorHitbox <= 0 {
		p.ActorHitbox = d.ActorHitbox
	}
	if p.ActorLaneX <= 0 {
		p.ActorLaneX = d.ActorLaneX
	}
	if p.CoinSize <= 0 {
		p.CoinSize = d.CoinSize
	}
	if p.PipeWidth <= 0 {
		p.PipeWidth = d.PipeWidth
	}
	if p.PipeHitboxWidth <= 0 || p.PipeHitboxWidth > p.PipeWidth {
		p.PipeHitboxWidth = p.PipeWidth
	}
	if p.MinMargin < 0 {
		p.MinMargin = 0
	}
	if p.CullMargin < 0 {
		p.CullMargin = 0
	}
	return p
}
