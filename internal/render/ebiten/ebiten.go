// Package ebiten adapts render.Surface to an Ebiten screen image.
package ebiten

import (
	"image/color"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

// maxTextImages bounds the text cache. A full cache is cleared.
const maxTextImages = 64

// ImageCache uploads decoded bitmaps to the GPU once and reuses them. It
// also keeps rendered text so a frame does not allocate per string.
type ImageCache struct {
	mu     sync.Mutex
	images map[*render.ImageBitmap]*ebiten.Image
	texts  map[string]*ebiten.Image
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[*render.ImageBitmap]*ebiten.Image),
		texts:  make(map[string]*ebiten.Image),
	}
}

// Text returns a white debug-font rendering of text, creating it on first use.
func (c *ImageCache) Text(text string) *ebiten.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.texts[text]; ok {
		return img
	}
	if len(c.texts) >= maxTextImages {
		for k, img := range c.texts {
			img.Deallocate()
			delete(c.texts, k)
		}
	}
	img := ebiten.NewImage(utf8.RuneCountInString(text)*glyphW+2, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.texts[text] = img
	return img
}

// Get returns the GPU image for b, creating it on first use.
func (c *ImageCache) Get(b *render.ImageBitmap) *ebiten.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[b]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(b.Image)
	c.images[b] = img
	return img
}

// Surface draws onto an *ebiten.Image.
type Surface struct {
	dst   *ebiten.Image
	cache *ImageCache
}

// New wraps dst. A nil cache disables bitmap drawing.
func New(dst *ebiten.Image, cache *ImageCache) *Surface {
	return &Surface{dst: dst, cache: cache}
}

// Size returns the image dimensions.
func (s *Surface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillCircle fills a circle.
func (s *Surface) FillCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeCircle draws a one pixel circle outline.
func (s *Surface) StrokeCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), 1, c, true)
}

// DrawBitmap scales an image bitmap into the destination rectangle.
func (s *Surface) DrawBitmap(b render.Bitmap, x, y, w, h int) error {
	ib, ok := b.(*render.ImageBitmap)
	if !ok || ib == nil || ib.Image == nil || s.cache == nil {
		return render.ErrUnsupportedBitmap
	}
	sw, sh := ib.Size()
	if w <= 0 || h <= 0 || sw == 0 || sh == 0 {
		return nil
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(s.cache.Get(ib), op)
	return nil
}

// DrawText prints with the debug font. The debug font is always white, so
// style colors are approximated by tinting the rendered text.
func (s *Surface) DrawText(x, y int, text string, align render.Align, style render.TextStyle) {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return
	}
	width := n * glyphW
	switch align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}
	top := y - glyphH + 3

	var scratch *ebiten.Image
	if s.cache != nil {
		scratch = s.cache.Text(text)
	} else {
		scratch = ebiten.NewImage(width+2, glyphH)
		defer scratch.Deallocate()
		ebitenutil.DebugPrintAt(scratch, text, 0, 0)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(style.Color)
	op.GeoM.Translate(float64(x), float64(top))
	s.dst.DrawImage(scratch, op)
	if style.Large {
		op.GeoM.Translate(1, 0)
		s.dst.DrawImage(scratch, op)
	}
}
