// Package config provides YAML-based configuration loading for Flappy
// Gargoyle: simulation tuning, sprite paths and terminal display geometry.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-gargoyle/internal/games/gargoyle"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

// GargoyleConfig contains all configuration for the game.
type GargoyleConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Player    PlayerConfig    `yaml:"player"`
	Coins     CoinsConfig     `yaml:"coins"`
	Assets    AssetsConfig    `yaml:"assets"`
	Display   DisplayConfig   `yaml:"display"`

	// Source is the file the config was read from, empty for built-in defaults.
	Source string `yaml:"-"`
}

// PhysicsConfig defines actor motion, in pixels per tick.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Impulse float64 `yaml:"impulse"` // Negative = up
	Speed   float64 `yaml:"speed"`   // Horizontal scroll
}

// ObstaclesConfig defines pipe geometry and cadence.
type ObstaclesConfig struct {
	GapHeight       float64 `yaml:"gap_height"`
	SpawnEvery      int     `yaml:"spawn_every"` // Ticks between pipes
	PipeWidth       float64 `yaml:"pipe_width"`
	PipeHitboxWidth float64 `yaml:"pipe_hitbox_width"`
	MinMargin       float64 `yaml:"min_margin"`
	CullMargin      float64 `yaml:"cull_margin"`
}

// PlayerConfig defines the actor's lane and hitbox.
type PlayerConfig struct {
	LaneX  float64 `yaml:"lane_x"`
	Hitbox float64 `yaml:"hitbox"`
}

// CoinsConfig defines collectibles and the daily cap.
type CoinsConfig struct {
	Chance      float64 `yaml:"chance"`
	Size        float64 `yaml:"size"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	DailyCap    int     `yaml:"daily_cap"`
}

// AssetsConfig locates sprite images. Relative paths resolve against Dir.
type AssetsConfig struct {
	Dir               string `yaml:"dir"`
	render.AssetPaths `yaml:",inline"`
}

// DisplayConfig defines how the pixel viewport maps to hosts.
type DisplayConfig struct {
	MaxWidth   int `yaml:"max_width"`   // Viewport width cap in pixels
	CellWidth  int `yaml:"cell_width"`  // Pixels per terminal column
	CellHeight int `yaml:"cell_height"` // Pixels per terminal row
	FPS        int `yaml:"fps"`
}

// ToParams maps the config onto engine tuning.
func (c GargoyleConfig) ToParams() gargoyle.Params {
	return gargoyle.Params{
		Gravity:         c.Physics.Gravity,
		Impulse:         c.Physics.Impulse,
		Speed:           c.Physics.Speed,
		GapHeight:       c.Obstacles.GapHeight,
		SpawnEvery:      c.Obstacles.SpawnEvery,
		CoinChance:      c.Coins.Chance,
		ActorHitbox:     c.Player.Hitbox,
		ActorLaneX:      c.Player.LaneX,
		CoinSize:        c.Coins.Size,
		PipeWidth:       c.Obstacles.PipeWidth,
		PipeHitboxWidth: c.Obstacles.PipeHitboxWidth,
		MinMargin:       c.Obstacles.MinMargin,
		CullMargin:      c.Obstacles.CullMargin,
		CoinSpawnOffset: c.Coins.SpawnOffset,
	}
}

// Viewport returns the pixel viewport for a terminal of cols×rows cells.
// The width is capped at Display.MaxWidth.
func (c GargoyleConfig) Viewport(cols, rows int) (w, h float64) {
	w = float64(cols * c.Display.CellWidth)
	if limit := float64(c.Display.MaxWidth); limit > 0 && w > limit {
		w = limit
	}
	return w, float64(rows * c.Display.CellHeight)
}

// Validate reports settings the engine cannot run with.
func (c GargoyleConfig) Validate() error {
	var errs []error
	if c.Obstacles.GapHeight <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight))
	}
	if c.Obstacles.SpawnEvery <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_every must be positive, got %d", c.Obstacles.SpawnEvery))
	}
	if c.Physics.Speed <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed must be positive, got %v", c.Physics.Speed))
	}
	if c.Coins.Chance < 0 || c.Coins.Chance > 1 {
		errs = append(errs, fmt.Errorf("coins.chance must be within [0, 1], got %v", c.Coins.Chance))
	}
	if c.Coins.DailyCap < 0 {
		errs = append(errs, fmt.Errorf("coins.daily_cap must not be negative, got %d", c.Coins.DailyCap))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display cell size must be positive"))
	}
	return errors.Join(errs...)
}
