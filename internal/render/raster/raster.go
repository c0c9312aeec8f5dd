// Package raster draws onto an in-memory RGBA image. It backs headless frame
// export and tests.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

// Surface is a render.Surface over an *image.RGBA.
type Surface struct {
	img  *image.RGBA
	face font.Face
}

// New creates a w×h surface filled with opaque black.
func New(w, h int) *Surface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: basicfont.Face7x13,
	}
	s.Clear(color.RGBA{A: 0xff})
	return s
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills the rectangle, clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// FillCircle fills every pixel whose center lies within r of (cx, cy).
func (s *Surface) FillCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	rr := float64(r) * float64(r)
	s.eachNear(cx, cy, r+1, func(x, y int, d2 float64) {
		if d2 <= rr {
			s.blend(x, y, c)
		}
	})
}

// StrokeCircle draws a one pixel outline at radius r.
func (s *Surface) StrokeCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	inner := (float64(r) - 0.5) * (float64(r) - 0.5)
	outer := (float64(r) + 0.5) * (float64(r) + 0.5)
	s.eachNear(cx, cy, r+1, func(x, y int, d2 float64) {
		if d2 >= inner && d2 < outer {
			s.blend(x, y, c)
		}
	})
}

// eachNear visits the in-bounds pixels of the square of half-size reach
// around (cx, cy), passing the squared distance from the pixel center.
func (s *Surface) eachNear(cx, cy, reach int, fn func(x, y int, d2 float64)) {
	area := image.Rect(cx-reach, cy-reach, cx+reach+1, cy+reach+1).Intersect(s.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := float64(x) + 0.5 - float64(cx)
			dy := float64(y) + 0.5 - float64(cy)
			fn(x, y, dx*dx+dy*dy)
		}
	}
}

func (s *Surface) blend(x, y int, c color.RGBA) {
	if c.A == 0xff {
		s.img.SetRGBA(x, y, c)
		return
	}
	draw.Draw(s.img, image.Rect(x, y, x+1, y+1), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawBitmap scales an image bitmap into the destination rectangle.
func (s *Surface) DrawBitmap(b render.Bitmap, x, y, w, h int) error {
	ib, ok := b.(*render.ImageBitmap)
	if !ok || ib == nil || ib.Image == nil {
		return render.ErrUnsupportedBitmap
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	dst := image.Rect(x, y, x+w, y+h)
	if dst.Intersect(s.img.Bounds()).Empty() {
		return nil
	}
	draw.ApproxBiLinear.Scale(s.img, dst, ib.Image, ib.Image.Bounds(), draw.Over, nil)
	return nil
}

// DrawText draws text with the basic 7×13 face. Large text is drawn twice
// with a one pixel offset to thicken the strokes.
func (s *Surface) DrawText(x, y int, text string, align render.Align, style render.TextStyle) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(style.Color),
		Face: s.face,
	}
	width := d.MeasureString(text).Round()
	switch align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}

	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	if style.Large {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(text)
	}
}
