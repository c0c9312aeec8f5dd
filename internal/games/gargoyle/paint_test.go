package gargoyle

import (
	"context"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-gargoyle/internal/render"
	"github.com/vovakirdan/flappy-gargoyle/internal/render/raster"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Width:     480,
		Height:    800,
		Actor:     Actor{X: 30, Y: 400},
		Pipes:     []Pipe{{X: 100.4, GapTop: 300, GapBottom: 470}},
		Coins:     []Coin{{X: 200, Y: 200, Size: 30}},
		Score:     7,
		Collected: 3,
		DailyCap:  10,
		Active:    true,
	}
}

func solidBitmap(w, h int, c color.RGBA) *render.ImageBitmap {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return render.NewImageBitmap(img)
}

func readyAsset(name string, b render.Bitmap) *render.Asset {
	a := render.NewAsset(name, name+".png")
	a.Resolve(b)
	return a
}

func TestPaintFallbacks(t *testing.T) {
	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), nil)

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 470, 790, ColorBackground},
		{"pipe top", 120, 100, ColorPipe},
		{"pipe bottom", 120, 600, ColorPipe},
		{"gap", 120, 400, ColorBackground},
		{"pipe left edge", 100, 200, ColorPipe},
		{"left of pipe", 99, 200, ColorBackground},
		{"pipe right edge", 151, 200, ColorPipe},
		{"right of pipe", 152, 200, ColorBackground},
		{"coin", 215, 215, ColorCoin},
		{"actor", 30, 400, ColorActor},
		{"beside actor", 50, 400, ColorBackground},
	}
	for _, c := range checks {
		if got := s.At(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestPaintRoundsCoordinates(t *testing.T) {
	snap := testSnapshot()
	snap.Pipes[0].X = 100.5

	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, snap, nil)

	if s.At(100, 200) != ColorBackground || s.At(101, 200) != ColorPipe {
		t.Error("pipe x 100.5 should be painted from pixel 101")
	}
}

func TestPaintUsesReadyAssets(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	assets := render.NewAssets(render.AssetPaths{})
	assets.Actor = readyAsset("actor", solidBitmap(2, 2, red))
	assets.PipeTop = readyAsset("pipe_top", solidBitmap(52, 1600, blue))

	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), assets)

	// Actor sprite is 42×42 centered on (30, 400), wider than the fallback circle.
	if got := s.At(10, 380); got != red {
		t.Errorf("actor sprite corner = %v, want red", got)
	}
	// Top pipe sprite reaches the top of the screen.
	if got := s.At(120, 0); got != blue {
		t.Errorf("top pipe sprite = %v, want blue", got)
	}
	// Bottom pipe is still loading and falls back.
	if got := s.At(120, 600); got != ColorPipe {
		t.Errorf("bottom pipe = %v, want fallback green", got)
	}
	// Coin is still loading and falls back.
	if got := s.At(215, 215); got != ColorCoin {
		t.Errorf("coin = %v, want fallback gold", got)
	}
}

func TestPaintFailedAssetsFallBack(t *testing.T) {
	assets := render.NewAssets(render.AssetPaths{})
	for _, a := range assets.All() {
		a.Fail(render.ErrNoPath)
	}

	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), assets)
	if got := s.At(30, 400); got != ColorActor {
		t.Errorf("actor = %v, want fallback", got)
	}
}

func TestPaintTypedNilBitmapFallsBack(t *testing.T) {
	assets := render.NewAssets(render.AssetPaths{
		Background: "bg.png",
		Actor:      "gargoyle.png",
		PipeTop:    "pipe_top.png",
		PipeBottom: "pipe_bottom.png",
		Coin:       "coin.png",
	})
	loader := render.LoaderFunc(func(ctx context.Context, path string) (render.Bitmap, error) {
		var bmp *render.ImageBitmap
		return bmp, nil
	})
	assets.Load(context.Background(), loader, log.New(io.Discard))
	assets.Wait()

	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), assets)
	if got := s.At(30, 400); got != ColorActor {
		t.Errorf("actor = %v, want fallback", got)
	}
	if got := s.At(120, 600); got != ColorPipe {
		t.Errorf("bottom pipe = %v, want fallback", got)
	}
}

func TestPaintSkipsCollectedCoins(t *testing.T) {
	snap := testSnapshot()
	snap.Coins[0].Collected = true

	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, snap, nil)
	if got := s.At(215, 215); got != ColorBackground {
		t.Errorf("collected coin painted: %v", got)
	}
}

func TestPaintHUD(t *testing.T) {
	s := raster.New(480, 800)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), nil)

	if n := countColor(s, image.Rect(220, 60, 260, 85), ColorWhite); n == 0 {
		t.Error("score should be drawn near the top center")
	}
	if n := countColor(s, image.Rect(360, 25, 461, 45), ColorCoin); n == 0 {
		t.Error("coin counter should be drawn at the top right")
	}
	if n := countColor(s, image.Rect(461, 0, 480, 60), ColorCoin); n != 0 {
		t.Error("coin counter should end 20px from the right edge")
	}
}

func TestPaintEmptySurface(t *testing.T) {
	s := raster.New(0, 0)
	NewPainter(DefaultParams()).Paint(s, testSnapshot(), nil)
}

func countColor(s *raster.Surface, r image.Rectangle, c color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.At(x, y) == c {
				n++
			}
		}
	}
	return n
}
