package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	l := log.New(os.Stderr)
	l.SetLevel(log.FatalLevel)
	return l
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestAssetStateTransitions(t *testing.T) {
	a := NewAsset("coin", "coin.png")
	if a.State() != AssetLoading {
		t.Fatalf("new asset state = %v, want loading", a.State())
	}
	if _, ok := a.Bitmap(); ok {
		t.Error("loading asset should not expose a bitmap")
	}

	a.Resolve(NewImageBitmap(solidImage(2, 2, color.RGBA{A: 255})))
	if a.State() != AssetReady {
		t.Fatalf("state = %v, want ready", a.State())
	}
	if _, ok := a.Bitmap(); !ok {
		t.Error("ready asset should expose its bitmap")
	}

	a.Fail(errors.New("late failure"))
	if a.State() != AssetReady {
		t.Error("a resolved asset must not change state")
	}
}

func TestAssetFail(t *testing.T) {
	a := NewAsset("actor", "missing.png")
	boom := errors.New("boom")
	a.Fail(boom)

	if a.State() != AssetFailed {
		t.Fatalf("state = %v, want failed", a.State())
	}
	if !errors.Is(a.Err(), boom) {
		t.Errorf("Err() = %v, want %v", a.Err(), boom)
	}
	a.Resolve(NewImageBitmap(solidImage(1, 1, color.RGBA{A: 255})))
	if _, ok := a.Bitmap(); ok {
		t.Error("a failed asset must stay failed")
	}
}

func TestResolveEmptyBitmapFails(t *testing.T) {
	var nilBitmap *ImageBitmap
	tests := map[string]Bitmap{
		"typed nil":   nilBitmap,
		"nil image":   &ImageBitmap{},
		"zero size":   NewImageBitmap(image.NewRGBA(image.Rect(0, 0, 0, 0))),
		"untyped nil": nil,
	}
	for name, bmp := range tests {
		a := NewAsset("actor", "gargoyle.png")
		a.Resolve(bmp)
		if a.State() != AssetFailed {
			t.Errorf("%s: state = %v, want failed", name, a.State())
		}
		if _, ok := a.Bitmap(); ok {
			t.Errorf("%s: failed asset exposes a bitmap", name)
		}
	}
}

func TestAssetsLoadTypedNilBitmap(t *testing.T) {
	set := NewAssets(AssetPaths{Actor: "gargoyle.png"})
	loader := LoaderFunc(func(ctx context.Context, path string) (Bitmap, error) {
		var bmp *ImageBitmap
		return bmp, nil
	})
	set.Load(context.Background(), loader, quietLogger())
	set.Wait()
	if set.Actor.State() != AssetFailed {
		t.Errorf("actor state = %v, want failed", set.Actor.State())
	}
}

func TestNilAssetIsFailed(t *testing.T) {
	var a *Asset
	if a.State() != AssetFailed {
		t.Errorf("nil asset state = %v, want failed", a.State())
	}
	if _, ok := a.Bitmap(); ok {
		t.Error("nil asset should not expose a bitmap")
	}
}

func TestAssetStateString(t *testing.T) {
	tests := map[AssetState]string{
		AssetLoading:  "loading",
		AssetReady:    "ready",
		AssetFailed:   "failed",
		AssetState(9): "AssetState(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int32(s), got, want)
		}
	}
}

func TestAssetsLoad(t *testing.T) {
	set := NewAssets(AssetPaths{
		Background: "bg.png",
		Actor:      "gargoyle.png",
		PipeTop:    "broken.png",
		PipeBottom: "",
		Coin:       "coin.png",
	})

	var calls atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, path string) (Bitmap, error) {
		calls.Add(1)
		if path == "broken.png" {
			return nil, errors.New("corrupt")
		}
		return NewImageBitmap(solidImage(4, 4, color.RGBA{R: 255, A: 255})), nil
	})

	set.Load(context.Background(), loader, quietLogger())
	set.Wait()

	if calls.Load() != 4 {
		t.Errorf("loader called %d times, want 4", calls.Load())
	}
	if set.Background.State() != AssetReady || set.Actor.State() != AssetReady || set.Coin.State() != AssetReady {
		t.Error("loadable assets should be ready")
	}
	if set.PipeTop.State() != AssetFailed {
		t.Errorf("broken asset state = %v, want failed", set.PipeTop.State())
	}
	if !errors.Is(set.PipeBottom.Err(), ErrNoPath) {
		t.Errorf("unconfigured asset err = %v, want ErrNoPath", set.PipeBottom.Err())
	}

	counts := set.Counts()
	if counts[AssetReady] != 3 || counts[AssetFailed] != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAssetsLoadDoesNotBlock(t *testing.T) {
	set := NewAssets(AssetPaths{Actor: "slow.png"})
	release := make(chan struct{})
	loader := LoaderFunc(func(ctx context.Context, path string) (Bitmap, error) {
		<-release
		return NewImageBitmap(solidImage(1, 1, color.RGBA{A: 255})), nil
	})

	set.Load(context.Background(), loader, quietLogger())
	if set.Actor.State() != AssetLoading {
		t.Fatalf("actor state = %v before release, want loading", set.Actor.State())
	}

	close(release)
	set.Wait()
	if set.Actor.State() != AssetReady {
		t.Errorf("actor state = %v after release, want ready", set.Actor.State())
	}
}

func TestAssetsLoadNilLoader(t *testing.T) {
	set := NewAssets(AssetPaths{Actor: "gargoyle.png"})
	set.Load(context.Background(), nil, quietLogger())
	set.Wait()
	if set.Actor.State() != AssetFailed {
		t.Errorf("state = %v, want failed", set.Actor.State())
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "coin.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(30, 30, color.RGBA{R: 255, G: 215, A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	loader := FileLoader{Root: dir}
	bmp, err := loader.Load(context.Background(), "coin.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := bmp.Size(); w != 30 || h != 30 {
		t.Errorf("size = %dx%d, want 30x30", w, h)
	}

	if _, err := loader.Load(context.Background(), "missing.png"); err == nil {
		t.Error("expected error for missing file")
	}

	if err := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(context.Background(), "junk.png"); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestFileLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileLoader{}).Load(ctx, "whatever.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1a1a1a", color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}},
		{"#22c55e", color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}},
		{"#FFD700", color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}},
		{"nope", color.RGBA{A: 0xff}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type rejectSurface struct{ drawn int }

func (s *rejectSurface) Size() (int, int)                            { return 10, 10 }
func (s *rejectSurface) FillRect(x, y, w, h int, c color.RGBA)       {}
func (s *rejectSurface) FillCircle(cx, cy, r int, c color.RGBA)      {}
func (s *rejectSurface) StrokeCircle(cx, cy, r int, c color.RGBA)    {}
func (s *rejectSurface) DrawText(int, int, string, Align, TextStyle) {}
func (s *rejectSurface) DrawBitmap(b Bitmap, x, y, w, h int) error {
	s.drawn++
	return ErrUnsupportedBitmap
}

func TestDrawAsset(t *testing.T) {
	s := &rejectSurface{}
	a := NewAsset("coin", "coin.png")

	if DrawAsset(s, a, 0, 0, 5, 5) {
		t.Error("loading asset should not draw")
	}
	if s.drawn != 0 {
		t.Error("surface should not be asked to draw a loading asset")
	}

	a.Resolve(NewImageBitmap(solidImage(1, 1, color.RGBA{A: 255})))
	if DrawAsset(s, a, 0, 0, 5, 5) {
		t.Error("rejected bitmap should report not drawn")
	}
	if s.drawn != 1 {
		t.Errorf("DrawBitmap calls = %d, want 1", s.drawn)
	}
}
