package render

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedBitmap is returned by a Surface that cannot draw a bitmap type.
var ErrUnsupportedBitmap = errors.New("render: unsupported bitmap")

// Align positions text relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle controls how text is drawn.
type TextStyle struct {
	Color color.RGBA
	Large bool
}

// Surface is a 2D drawing target measured in integer pixels. Implementations
// clip silently; drawing outside the surface is never an error.
type Surface interface {
	Size() (w, h int)
	FillRect(x, y, w, h int, c color.RGBA)
	FillCircle(cx, cy, r int, c color.RGBA)
	StrokeCircle(cx, cy, r int, c color.RGBA)
	DrawBitmap(b Bitmap, x, y, w, h int) error
	// DrawText draws text with its baseline at y.
	DrawText(x, y int, text string, align Align, style TextStyle)
}

// DrawAsset draws a Ready asset scaled into the rectangle and reports
// whether it did. Loading or Failed assets, and bitmaps the surface rejects,
// draw nothing so the caller can paint its fallback.
func DrawAsset(s Surface, a *Asset, x, y, w, h int) bool {
	bmp, ok := a.Bitmap()
	if !ok {
		return false
	}
	return s.DrawBitmap(bmp, x, y, w, h) == nil
}

// Hex parses "#rrggbb" into an opaque color. Malformed input yields black.
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
