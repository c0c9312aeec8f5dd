package render

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrNoPath is recorded for assets that were never configured.
var ErrNoPath = errors.New("render: no asset path configured")

// AssetPaths names the image file for each sprite. Empty paths are allowed;
// the matching asset fails immediately and the painter uses its fallback.
type AssetPaths struct {
	Background string `yaml:"background"`
	Actor      string `yaml:"actor"`
	PipeTop    string `yaml:"pipe_top"`
	PipeBottom string `yaml:"pipe_bottom"`
	Coin       string `yaml:"coin"`
}

// Assets is the sprite set of the game.
type Assets struct {
	Background *Asset
	Actor      *Asset
	PipeTop    *Asset
	PipeBottom *Asset
	Coin       *Asset

	wg sync.WaitGroup
}

// NewAssets creates a set with every asset Loading.
func NewAssets(p AssetPaths) *Assets {
	return &Assets{
		Background: NewAsset("background", p.Background),
		Actor:      NewAsset("actor", p.Actor),
		PipeTop:    NewAsset("pipe_top", p.PipeTop),
		PipeBottom: NewAsset("pipe_bottom", p.PipeBottom),
		Coin:       NewAsset("coin", p.Coin),
	}
}

// All returns the assets in load order.
func (a *Assets) All() []*Asset {
	return []*Asset{a.Background, a.Actor, a.PipeTop, a.PipeBottom, a.Coin}
}

// Load starts one goroutine per asset and returns immediately. Failures are
// logged at debug level and leave the asset Failed; they never reach the
// caller. Cancelling ctx fails every asset still in flight.
func (a *Assets) Load(ctx context.Context, loader Loader, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	for _, asset := range a.All() {
		if asset.Path == "" {
			asset.Fail(ErrNoPath)
			continue
		}
		if loader == nil {
			asset.Fail(errors.New("render: no loader"))
			continue
		}

		a.wg.Add(1)
		go func(asset *Asset) {
			defer a.wg.Done()
			bmp, err := loader.Load(ctx, asset.Path)
			if err != nil {
				asset.Fail(err)
				logger.Debug("asset failed", "name", asset.Name, "path", asset.Path, "err", err)
				return
			}
			asset.Resolve(bmp)
			logger.Debug("asset ready", "name", asset.Name, "path", asset.Path)
		}(asset)
	}
}

// Wait blocks until every load started by Load has resolved.
func (a *Assets) Wait() {
	a.wg.Wait()
}

// Counts returns how many assets are in each state.
func (a *Assets) Counts() map[AssetState]int {
	out := make(map[AssetState]int, 3)
	for _, asset := range a.All() {
		out[asset.State()]++
	}
	return out
}
