package gargoyle

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

// Sprite geometry in pixels.
const (
	PipeSpriteHeight    = 1600.0 // Tall enough to cover any viewport from the gap edge
	ActorSpriteSize     = 42.0
	ActorFallbackRadius = 16
	CoinFallbackRadius  = 12
)

// HUD placement in pixels.
const (
	ScoreY       = 80
	CoinsY       = 40
	CoinsRightAt = 20 // Distance of the coin counter from the right edge
)

// Fallback and HUD colors.
var (
	ColorBackground = render.Hex("#1a1a1a")
	ColorPipe       = render.Hex("#22c55e")
	ColorCoin       = render.Hex("#ffd700")
	ColorActor      = render.Hex("#fbbf24")
	ColorWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Painter draws a Snapshot onto any render.Surface.
type Painter struct {
	params Params
}

// NewPainter creates a painter for the given geometry.
func NewPainter(params Params) *Painter {
	return &Painter{params: params.withDefaults()}
}

// Paint draws one frame: background, pipes, coins, actor, then the HUD.
// Missing or unloaded assets are replaced by flat shapes; painting never
// fails. A nil asset set paints every fallback.
func (p *Painter) Paint(s render.Surface, snap Snapshot, assets *render.Assets) {
	if assets == nil {
		assets = &render.Assets{}
	}
	w, h := s.Size()

	if !render.DrawAsset(s, assets.Background, 0, 0, w, h) {
		s.FillRect(0, 0, w, h, ColorBackground)
	}

	pipeW := core.RoundPx(p.params.PipeWidth)
	spriteH := core.RoundPx(PipeSpriteHeight)
	for _, pipe := range snap.Pipes {
		x := core.RoundPx(pipe.X)
		topY := core.RoundPx(pipe.GapTop - PipeSpriteHeight)
		bottomY := core.RoundPx(pipe.GapBottom)
		if !render.DrawAsset(s, assets.PipeTop, x, topY, pipeW, spriteH) {
			s.FillRect(x, topY, pipeW, spriteH, ColorPipe)
		}
		if !render.DrawAsset(s, assets.PipeBottom, x, bottomY, pipeW, spriteH) {
			s.FillRect(x, bottomY, pipeW, spriteH, ColorPipe)
		}
	}

	for _, coin := range snap.Coins {
		if coin.Collected {
			continue
		}
		size := core.RoundPx(coin.Size)
		if render.DrawAsset(s, assets.Coin, core.RoundPx(coin.X), core.RoundPx(coin.Y), size, size) {
			continue
		}
		cx, cy := coin.Center()
		s.FillCircle(core.RoundPx(cx), core.RoundPx(cy), CoinFallbackRadius, ColorCoin)
		s.StrokeCircle(core.RoundPx(cx), core.RoundPx(cy), CoinFallbackRadius, ColorWhite)
	}

	ax, ay := snap.Actor.X, snap.Actor.Y
	size := core.RoundPx(ActorSpriteSize)
	if !render.DrawAsset(s, assets.Actor, core.RoundPx(ax-ActorSpriteSize/2), core.RoundPx(ay-ActorSpriteSize/2), size, size) {
		s.FillCircle(core.RoundPx(ax), core.RoundPx(ay), ActorFallbackRadius, ColorActor)
	}

	p.paintHUD(s, snap, w)
}

func (p *Painter) paintHUD(s render.Surface, snap Snapshot, w int) {
	s.DrawText(w/2, ScoreY, fmt.Sprint(snap.Score), render.AlignCenter, render.TextStyle{
		Color: ColorWhite,
		Large: true,
	})
	s.DrawText(w-CoinsRightAt, CoinsY, fmt.Sprintf("Coins: %d/%d", snap.Collected, snap.DailyCap), render.AlignRight, render.TextStyle{
		Color: ColorCoin,
	})
}
