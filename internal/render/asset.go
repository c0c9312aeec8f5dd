// Package render holds the presentation layer shared by every host: images
// that load in the background, and the Surface abstraction painters draw on.
//
// Assets never block a frame. A painter asks an Asset for its bitmap and
// falls back to a plain shape until the bitmap is Ready.
package render

import (
	"fmt"
	"image"
	"sync/atomic"
)

// AssetState is the load state of an Asset.
type AssetState int32

const (
	AssetLoading AssetState = iota
	AssetReady
	AssetFailed
)

// String returns the state name.
func (s AssetState) String() string {
	switch s {
	case AssetLoading:
		return "loading"
	case AssetReady:
		return "ready"
	case AssetFailed:
		return "failed"
	default:
		return fmt.Sprintf("AssetState(%d)", int32(s))
	}
}

// Bitmap is decoded image data a Surface knows how to draw.
type Bitmap interface {
	Size() (w, h int)
}

// ImageBitmap wraps a decoded image.Image.
type ImageBitmap struct {
	Image image.Image
}

// NewImageBitmap wraps img.
func NewImageBitmap(img image.Image) *ImageBitmap {
	return &ImageBitmap{Image: img}
}

// Size returns the image dimensions.
func (b *ImageBitmap) Size() (int, int) {
	if b == nil || b.Image == nil {
		return 0, 0
	}
	r := b.Image.Bounds()
	return r.Dx(), r.Dy()
}

type bitmapRef struct {
	bmp Bitmap
}

// Asset is a named image whose bitmap arrives asynchronously. It is safe for
// one loader goroutine to resolve it while painters read it.
type Asset struct {
	Name string
	Path string

	state  atomic.Int32
	bitmap atomic.Pointer[bitmapRef]
	err    atomic.Pointer[error]
}

// NewAsset returns an asset in the Loading state.
func NewAsset(name, path string) *Asset {
	return &Asset{Name: name, Path: path}
}

// State returns the current load state.
func (a *Asset) State() AssetState {
	if a == nil {
		return AssetFailed
	}
	return AssetState(a.state.Load())
}

// Bitmap returns the decoded bitmap once the asset is Ready.
func (a *Asset) Bitmap() (Bitmap, bool) {
	if a.State() != AssetReady {
		return nil, false
	}
	ref := a.bitmap.Load()
	if ref == nil || ref.bmp == nil {
		return nil, false
	}
	return ref.bmp, true
}

// Err returns the load failure, if any.
func (a *Asset) Err() error {
	if a == nil {
		return nil
	}
	if p := a.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Resolve marks the asset Ready with bmp. A nil or empty bitmap marks it
// Failed. Only the first resolution counts.
func (a *Asset) Resolve(bmp Bitmap) {
	if bmp == nil {
		a.Fail(fmt.Errorf("asset %s: empty bitmap", a.Name))
		return
	}
	if w, h := bmp.Size(); w <= 0 || h <= 0 {
		a.Fail(fmt.Errorf("asset %s: empty bitmap", a.Name))
		return
	}
	if a.State() != AssetLoading {
		return
	}
	a.bitmap.Store(&bitmapRef{bmp: bmp})
	a.state.CompareAndSwap(int32(AssetLoading), int32(AssetReady))
}

// Fail marks the asset Failed. Only the first resolution counts.
func (a *Asset) Fail(err error) {
	if a.state.CompareAndSwap(int32(AssetLoading), int32(AssetFailed)) {
		a.err.Store(&err)
	}
}
