package gargoyle

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/registry"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
	"github.com/vovakirdan/flappy-gargoyle/internal/render/cells"
)

// Registered game IDs.
const (
	GameID         = "gargoyle"
	PracticeGameID = "gargoyle_practice"
)

// Host-wide settings applied to every new Game.
var (
	settingsMu   sync.RWMutex
	globalParams = DefaultParams()
	globalAssets *render.Assets
)

// SetParams sets the tuning used by games created afterwards.
func SetParams(p Params) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalParams = p.withDefaults()
}

// SetAssets shares a sprite set with games created afterwards.
func SetAssets(a *render.Assets) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalAssets = a
}

func currentSettings() (Params, *render.Assets) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return globalParams, globalAssets
}

// Game adapts the Engine to the registry.Game interface used by the hosts.
type Game struct {
	id       string
	title    string
	practice bool

	params  Params
	assets  *render.Assets
	engine  *Engine
	painter *Painter
	config  core.RuntimeConfig
	paused  bool
	pending []core.Event
}

// New creates the standard game, which counts coins against the daily cap.
func New() *Game {
	return newGame(GameID, "Flappy Gargoyle", false)
}

// NewPractice creates a game without coins.
func NewPractice() *Game {
	return newGame(PracticeGameID, "Flappy Gargoyle (practice)", true)
}

func newGame(id, title string, practice bool) *Game {
	params, assets := currentSettings()
	return &Game{
		id:       id,
		title:    title,
		practice: practice,
		params:   params,
		assets:   assets,
		painter:  NewPainter(params),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset starts a new session sized to the config's pixel viewport.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	g.pending = g.pending[:0]

	limit := cfg.DailyCap
	if g.practice {
		limit = 0
	}
	g.engine = NewEngine(WithSeed(cfg.Seed), WithParams(g.params), WithDailyCap(limit))
	g.engine.Start(cfg.ViewportW, cfg.ViewportH, cfg.CoinsSoFar, Events{
		CoinCollected: func() {
			g.pending = append(g.pending, core.Event{Kind: core.EventCoinCollected})
		},
		GameOver: func(score int) {
			g.pending = append(g.pending, core.Event{Kind: core.EventGameOver, Score: score})
		},
	})
}

// Step advances the game by one tick and reports the events it raised.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || !g.engine.IsActive() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.engine.ApplyImpulse()
	}
	g.engine.Tick()

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Render paints the current frame onto the terminal screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	surface := cells.New(dst, g.config.ViewportW, g.config.ViewportH)
	g.painter.Paint(surface, g.engine.Snapshot(), g.assets)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if !g.engine.IsActive() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.engine.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: !g.engine.IsActive(),
		Paused:   g.paused,
		Coins:    g.engine.Coins(),
		DailyCap: g.engine.DailyCap(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(PracticeGameID, func() registry.Game {
		return NewPractice()
	})
}
