// SPDX-License-Identifier: Unlicense OR MIT

// Package paint declares the drawing backend contract consumed by
// the widget package, together with the alignment vocabulary and the
// checkerboard tiling shared by every backend.
package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/luapower/testui/f32"
)

// Align places content within an axis of its rectangle.
type Align uint8

const (
	// Start aligns to the left or top edge.
	Start Align = iota
	// Middle centers.
	Middle
	// End aligns to the right or bottom edge.
	End
)

// Backend is the vector drawing surface the engine renders through.
// Implementations keep a current color, set by SetColor and used by
// operations whose explicit color has zero alpha.
type Backend interface {
	// SetColor sets the current drawing color.
	SetColor(col color.NRGBA)
	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string, bold bool) float32
	// DrawText draws s aligned within r, clipped to r and
	// vertically centered on the font's ascent and descent. It
	// returns the width consumed, at most r.W.
	DrawText(s string, halign, valign Align, r f32.Rect, bold bool, col color.NRGBA) float32
	// DrawBox fills and/or strokes r. A nil color skips that pass.
	DrawBox(r f32.Rect, fill, stroke *color.NRGBA)
	// DrawImage blits img at pos under a uniform scale transform.
	DrawImage(img image.Image, pos f32.Point, scale float32)
	// DrawCheckerboard covers a surface of the given size with an
	// alternating translucent grid of square tiles.
	DrawCheckerboard(square float32, size f32.Point)
}

// CheckerTiles calls tile for every square of a checkerboard
// covering size, row by row. Boundary tiles are included, so the
// tile count is ceil(w/square) * ceil(h/square), and horizontally
// and vertically adjacent tiles alternate shade. Backends implement
// DrawCheckerboard on top of this so the tiling cannot drift between
// them.
func CheckerTiles(square float32, size f32.Point, tile func(r f32.Rect, dark bool)) {
	if square <= 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	cols := int(math.Ceil(float64(size.X / square)))
	rows := int(math.Ceil(float64(size.Y / square)))
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			r := f32.Rect{
				X: float32(i) * square,
				Y: float32(j) * square,
				W: square,
				H: square,
			}
			tile(r, (i+j)%2 == 0)
		}
	}
}

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}
