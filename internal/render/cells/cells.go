// Package cells draws pixel-space scenes onto a terminal cell grid. Each
// cell stands for a block of pixels; a cell is inked when its center falls
// inside a shape.
package cells

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-gargoyle/internal/core"
	"github.com/vovakirdan/flappy-gargoyle/internal/render"
)

// Runes used for solid shapes.
const (
	BlockRune  = '█'
	CircleRune = '●'
)

// darkLuminance is the brightness below which a color is left as empty
// terminal background instead of being inked.
const darkLuminance = 48

// Surface is a render.Surface over a core.Screen.
type Surface struct {
	screen *core.Screen
	pxW    float64 // Pixels per cell, horizontally
	pxH    float64 // Pixels per cell, vertically
	w, h   int     // Viewport size in pixels
}

// New maps a viewport of vpW×vpH pixels onto the whole screen.
func New(screen *core.Screen, vpW, vpH float64) *Surface {
	s := &Surface{screen: screen, pxW: 1, pxH: 1}
	if vpW > 0 && screen.Width() > 0 {
		s.pxW = vpW / float64(screen.Width())
		s.w = int(math.Round(vpW))
	}
	if vpH > 0 && screen.Height() > 0 {
		s.pxH = vpH / float64(screen.Height())
		s.h = int(math.Round(vpH))
	}
	return s
}

// Size returns the viewport size in pixels.
func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

// CellAt returns the cell containing pixel (x, y).
func (s *Surface) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.pxW)), int(math.Floor(y / s.pxH))
}

// cellCenter returns the pixel at the center of cell (cx, cy).
func (s *Surface) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.pxW, (float64(cy) + 0.5) * s.pxH
}

// cellsIn returns the clipped range of cells that may overlap the pixel
// rectangle [x0, x1) × [y0, y1).
func (s *Surface) cellsIn(x0, y0, x1, y1 float64) image.Rectangle {
	cx0, cy0 := s.CellAt(x0, y0)
	cx1, cy1 := s.CellAt(x1, y1)
	r := image.Rect(cx0, cy0, cx1+1, cy1+1)
	return r.Intersect(image.Rect(0, 0, s.screen.Width(), s.screen.Height()))
}

// ink returns the cell that paints color c with rune r.
func ink(r rune, c color.RGBA) core.Cell {
	if c.A < 0x80 {
		return core.Cell{}
	}
	if core.Luminance(c) < darkLuminance {
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	}
	return core.Cell{Rune: r, Color: core.NearestColor(c)}
}

func (s *Surface) put(x, y int, cell core.Cell) {
	if cell.Rune == 0 {
		return
	}
	s.screen.SetCell(x, y, cell)
}

// FillRect inks every cell whose center lies inside the rectangle.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := float64(x), float64(y)
	x1, y1 := float64(x+w), float64(y+h)
	cell := ink(BlockRune, c)
	area := s.cellsIn(x0, y0, x1, y1)
	for cy := area.Min.Y; cy < area.Max.Y; cy++ {
		for cx := area.Min.X; cx < area.Max.X; cx++ {
			px, py := s.cellCenter(cx, cy)
			if px >= x0 && px < x1 && py >= y0 && py < y1 {
				s.put(cx, cy, cell)
			}
		}
	}
}

// FillCircle inks cells whose centers lie inside the circle. A circle too
// small to cover any cell center still inks the cell under its center.
func (s *Surface) FillCircle(cx, cy, r int, c color.RGBA) {
	if r <= 0 {
		return
	}
	fx, fy, fr := float64(cx), float64(cy), float64(r)
	cell := ink(CircleRune, c)
	area := s.cellsIn(fx-fr, fy-fr, fx+fr, fy+fr)
	inked := false
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			px, py := s.cellCenter(x, y)
			if core.Distance(px, py, fx, fy) <= fr {
				s.put(x, y, cell)
				inked = true
			}
		}
	}
	if !inked {
		x, y := s.CellAt(fx, fy)
		s.put(x, y, cell)
	}
}

// StrokeCircle is a no-op: a one pixel outline is far below cell resolution.
func (s *Surface) StrokeCircle(cx, cy, r int, c color.RGBA) {}

// DrawBitmap samples the image once per covered cell. Transparent samples
// leave the cell untouched.
func (s *Surface) DrawBitmap(b render.Bitmap, x, y, w, h int) error {
	ib, ok := b.(*render.ImageBitmap)
	if !ok || ib == nil || ib.Image == nil {
		return render.ErrUnsupportedBitmap
	}
	if w <= 0 || h <= 0 {
		return nil
	}
	src := ib.Image.Bounds()
	x0, y0 := float64(x), float64(y)
	x1, y1 := float64(x+w), float64(y+h)
	area := s.cellsIn(x0, y0, x1, y1)
	for cy := area.Min.Y; cy < area.Max.Y; cy++ {
		for cx := area.Min.X; cx < area.Max.X; cx++ {
			px, py := s.cellCenter(cx, cy)
			if px < x0 || px >= x1 || py < y0 || py >= y1 {
				continue
			}
			sx := src.Min.X + int((px-x0)/float64(w)*float64(src.Dx()))
			sy := src.Min.Y + int((py-y0)/float64(h)*float64(src.Dy()))
			c := color.RGBAModel.Convert(ib.Image.At(sx, sy)).(color.RGBA)
			s.put(cx, cy, ink(BlockRune, c))
		}
	}
	return nil
}

// DrawText writes text on the row containing the pixel just above the
// baseline. Text is never dropped for being dark; it falls back to white.
func (s *Surface) DrawText(x, y int, text string, align render.Align, style render.TextStyle) {
	if text == "" {
		return
	}
	col, row := s.CellAt(float64(x), float64(y-1))
	n := utf8.RuneCountInString(text)
	switch align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}

	c := core.NearestColor(style.Color)
	if core.Luminance(style.Color) < darkLuminance {
		c = core.ColorWhite
	}
	s.screen.DrawColorText(col, row, text, c)
}
