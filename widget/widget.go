// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the composer operations: stateless controls
assembled from a flow allocation, an arbiter query and backend draw
calls. No widget retains a value between frames; every interactive
operation returns the updated value to the caller, who stores it and
passes it back on the next frame.
*/
package widget

import (
	"image"
	"image/color"

	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/layout"
	"github.com/luapower/testui/paint"
)

// TextPad is the horizontal padding added around widget captions.
const TextPad = 12

// Palette is the set of colors the composer draws with.
type Palette struct {
	Text     color.NRGBA
	Heading  color.NRGBA
	Frame    color.NRGBA
	Hot      color.NRGBA
	Selected color.NRGBA
	Active   color.NRGBA
}

// Colors is the active palette. Callers may replace entries before
// the first frame.
var Colors = Palette{
	Text:     color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
	Heading:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Frame:    color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	Hot:      color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	Selected: color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff},
	Active:   color.NRGBA{R: 0x4d, G: 0x80, B: 0xb3, A: 0xff},
}

// Button lays out a selectable push button sized to its label. It
// toggles and reports a click only on the frame the button claims
// the pointer; on every other frame the selection passes through
// unchanged.
func Button(gtx *layout.Context, id, label string, selected bool) (clicked, sel bool) {
	return button(gtx, router.ID{Base: id}, label, selected)
}

func button(gtx *layout.Context, id router.ID, label string, selected bool) (bool, bool) {
	w := gtx.Backend.MeasureText(label, false)
	r := gtx.Flow.Allocate(w+2*TextPad, 0)
	active, hit, clicked := gtx.Input.Activate(id, r)
	if clicked {
		selected = !selected
		gtx.Invalidate()
	}
	var fill *color.NRGBA
	stroke := &Colors.Frame
	switch {
	case active:
		fill = &Colors.Active
	case selected:
		fill = &Colors.Selected
	}
	if hit {
		stroke = &Colors.Hot
	}
	gtx.Backend.DrawBox(r, fill, stroke)
	gtx.Backend.DrawText(label, paint.Middle, paint.Middle, r, false, Colors.Text)
	return clicked, selected
}

// Heading draws a bold line of text sized to its width.
func Heading(gtx *layout.Context, s string) {
	w := gtx.Backend.MeasureText(s, true)
	r := gtx.Flow.Allocate(w+2*TextPad, 0)
	gtx.Backend.DrawText(s, paint.Start, paint.Middle, r, true, Colors.Heading)
}

// Label draws a line of text sized to its width.
func Label(gtx *layout.Context, s string) {
	w := gtx.Backend.MeasureText(s, false)
	r := gtx.Flow.Allocate(w+2*TextPad, 0)
	gtx.Backend.DrawText(s, paint.Start, paint.Middle, r, false, Colors.Text)
}

// Image allocates a rectangle for img scaled uniformly by scale and
// blits it through the backend.
func Image(gtx *layout.Context, img image.Image, scale float32) {
	sz := img.Bounds().Size()
	r := gtx.Flow.Allocate(float32(sz.X)*scale, float32(sz.Y)*scale)
	gtx.Backend.DrawImage(img, r.Min(), scale)
}

// Checkerboard fills the whole surface with an alternating
// translucent grid. It is a background, not a flowed widget: the
// cursor does not move.
func Checkerboard(gtx *layout.Context, square float32) {
	gtx.Backend.DrawCheckerboard(square, gtx.Size)
}
