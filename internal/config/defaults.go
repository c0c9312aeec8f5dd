package config

import (
	_ "embed"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

//go:embed defaults/gargoyle.yaml
var defaultGargoyleYAML []byte

// DefaultGargoyleConfig returns the default configuration.
func DefaultGargoyleConfig() GargoyleConfig {
	p := gargoyle.DefaultParams()
	return GargoyleConfig{
		Physics: PhysicsConfig{
			Gravity: p.Gravity,
			Impulse: p.Impulse,
			Speed:   p.Speed,
		},
		Obstacles: ObstaclesConfig{
			GapHeight:       p.GapHeight,
			SpawnEvery:      p.SpawnEvery,
			PipeWidth:       p.PipeWidth,
			PipeHitboxWidth: p.PipeHitboxWidth,
			MinMargin:       p.MinMargin,
			CullMargin:      p.CullMargin,
		},
		Player: PlayerConfig{
			LaneX:  p.ActorLaneX,
			Hitbox: p.ActorHitbox,
		},
		Coins: CoinsConfig{
			Chance:      p.CoinChance,
			Size:        p.CoinSize,
			SpawnOffset: p.CoinSpawnOffset,
			DailyCap:    10,
		},
		Assets: AssetsConfig{
			Dir: "assets",
			AssetPaths: render.AssetPaths{
				Background: "background.png",
				Actor:      "gargoyle.png",
				PipeTop:    "pipe-top.png",
				PipeBottom: "pipe-bottom.png",
				Coin:       "coin.png",
			},
		},
		Display: DisplayConfig{
			MaxWidth:   480,
			CellWidth:  6,
			CellHeight: 16,
			FPS:        60,
		},
	}
}
