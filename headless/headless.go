// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements the drawing backend on a plain RGBA
// image, with no window system attached. It backs the test suites
// and is handy for dumping frames to disk while debugging.
package headless

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/paint"
)

const fontSize = 13

// Backend renders into an *image.RGBA.
type Backend struct {
	img     *image.RGBA
	regular font.Face
	bold    font.Face
	col     color.NRGBA

	// BaselineOffset nudges text vertically, for parity with
	// backends whose font rasterization sits a pixel off.
	BaselineOffset float32
}

// New returns a backend rendering to a fresh surface of the given
// size, with the Go fonts loaded for text metrics.
func New(width, height int) (*Backend, error) {
	regular, err := newFace(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := newFace(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Backend{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		regular: regular,
		bold:    bold,
		col:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}, nil
}

func newFace(ttf []byte) (font.Face, error) {
	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image returns the surface the backend renders to.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Clear fills the whole surface with col.
func (b *Backend) Clear(col color.NRGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (b *Backend) SetColor(col color.NRGBA) {
	b.col = col
}

func (b *Backend) face(bold bool) font.Face {
	if bold {
		return b.bold
	}
	return b.regular
}

func (b *Backend) MeasureText(s string, bold bool) float32 {
	return float32(font.MeasureString(b.face(bold), s).Ceil())
}

func (b *Backend) DrawText(s string, halign, valign paint.Align, r f32.Rect, bold bool, col color.NRGBA) float32 {
	if col.A == 0 {
		col = b.col
	}
	face := b.face(bold)
	width := float32(font.MeasureString(face, s).Ceil())
	var x float32
	switch halign {
	case paint.Start:
		x = r.X
	case paint.Middle:
		x = r.X + (r.W-width)/2
	case paint.End:
		x = r.X + r.W - width
	}
	m := face.Metrics()
	ascent := float32(m.Ascent.Ceil())
	descent := float32(m.Descent.Ceil())
	var baseline float32
	switch valign {
	case paint.Start:
		baseline = r.Y + ascent
	case paint.Middle:
		baseline = r.Y + (r.H+ascent-descent)/2
	case paint.End:
		baseline = r.Y + r.H - descent
	}
	baseline += b.BaselineOffset
	clip, ok := b.img.SubImage(rectBounds(r)).(*image.RGBA)
	if !ok {
		return 0
	}
	d := font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(baseline * 64),
		},
	}
	d.DrawString(s)
	if width > r.W {
		width = r.W
	}
	return width
}

func (b *Backend) DrawBox(r f32.Rect, fill, stroke *color.NRGBA) {
	bounds := rectBounds(r)
	if fill != nil {
		draw.Draw(b.img, bounds, image.NewUniform(*fill), image.Point{}, draw.Over)
	}
	if stroke != nil {
		src := image.NewUniform(*stroke)
		top := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+1)
		bottom := image.Rect(bounds.Min.X, bounds.Max.Y-1, bounds.Max.X, bounds.Max.Y)
		left := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+1, bounds.Max.Y)
		right := image.Rect(bounds.Max.X-1, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		for _, edge := range []image.Rectangle{top, bottom, left, right} {
			draw.Draw(b.img, edge, src, image.Point{}, draw.Over)
		}
	}
}

func (b *Backend) DrawImage(img image.Image, pos f32.Point, scale float32) {
	sz := img.Bounds().Size()
	dst := rectBounds(f32.Rect{
		X: pos.X,
		Y: pos.Y,
		W: float32(sz.X) * scale,
		H: float32(sz.Y) * scale,
	})
	xdraw.NearestNeighbor.Scale(b.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

func (b *Backend) DrawCheckerboard(square float32, size f32.Point) {
	light := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20}
	dark := color.NRGBA{A: 0x20}
	paint.CheckerTiles(square, size, func(r f32.Rect, isDark bool) {
		col := light
		if isDark {
			col = dark
		}
		draw.Draw(b.img, rectBounds(r), image.NewUniform(col), image.Point{}, draw.Over)
	})
}

func rectBounds(r f32.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W+0.5), int(r.Y+r.H+0.5))
}
