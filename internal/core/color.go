package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette holds the approximate RGB value of each terminal color.
// ColorDefault is treated as "no ink" and never matched.
var palette = map[Color]color.RGBA{
	ColorRed:           {205, 49, 49, 255},
	ColorGreen:         {13, 188, 121, 255},
	ColorYellow:        {229, 229, 16, 255},
	ColorBlue:          {36, 114, 200, 255},
	ColorMagenta:       {188, 63, 188, 255},
	ColorCyan:          {17, 168, 205, 255},
	ColorWhite:         {229, 229, 229, 255},
	ColorBrightRed:     {241, 76, 76, 255},
	ColorBrightGreen:   {35, 209, 139, 255},
	ColorBrightYellow:  {245, 245, 67, 255},
	ColorBrightBlue:    {59, 142, 234, 255},
	ColorBrightMagenta: {214, 112, 214, 255},
	ColorBrightCyan:    {41, 184, 219, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 135, 0, 255},
	ColorGray:          {138, 138, 138, 255},
}

// paletteOrder fixes iteration order so ties resolve deterministically.
var paletteOrder = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
	ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite, ColorOrange, ColorGray,
}

// NearestColor returns the palette color closest to c (squared RGB distance).
func NearestColor(c color.RGBA) Color {
	best := ColorWhite
	bestDist := -1
	for _, pc := range paletteOrder {
		p := palette[pc]
		dr := int(p.R) - int(c.R)
		dg := int(p.G) - int(c.G)
		db := int(p.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = pc
			bestDist = d
		}
	}
	return best
}

// Luminance returns the perceived brightness of c in [0, 255].
func Luminance(c color.RGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
