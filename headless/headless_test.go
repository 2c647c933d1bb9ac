// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"
	"image/color"
	"testing"

	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/paint"
)

func newBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New(200, 100)
	if err != nil {
		t.Fatal(err)
	}
	b.Clear(color.NRGBA{A: 0xff})
	return b
}

func TestMeasureText(t *testing.T) {
	b := newBackend(t)
	w := b.MeasureText("Speed", false)
	if w <= 0 {
		t.Fatalf("width = %v, want > 0", w)
	}
	if bw := b.MeasureText("Speed", true); bw < w {
		t.Errorf("bold width %v < regular %v", bw, w)
	}
	if b.MeasureText("", false) != 0 {
		t.Error("empty string has nonzero width")
	}
}

func TestDrawTextClipsAndReturnsConsumedWidth(t *testing.T) {
	b := newBackend(t)
	r := f32.Rct(10, 10, 100, 30)
	got := b.DrawText("hello", paint.Start, paint.Middle, r, false, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if want := b.MeasureText("hello", false); got != want {
		t.Errorf("consumed = %v, want %v", got, want)
	}
	if !anyInk(b.Image(), image.Rect(10, 10, 110, 40)) {
		t.Error("no pixels drawn inside the text rect")
	}
	// A rect narrower than the text reports the rect width and
	// leaves the outside untouched.
	b.Clear(color.NRGBA{A: 0xff})
	narrow := f32.Rct(10, 10, 8, 30)
	if got := b.DrawText("hello", paint.Start, paint.Middle, narrow, false, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); got != 8 {
		t.Errorf("consumed = %v, want clipped 8", got)
	}
	if anyInk(b.Image(), image.Rect(19, 0, 200, 100)) {
		t.Error("text escaped its clip rect")
	}
}

func TestDrawBox(t *testing.T) {
	b := newBackend(t)
	red := color.NRGBA{R: 0xff, A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	b.DrawBox(f32.Rct(10, 10, 20, 20), &red, &white)
	if got := b.Image().RGBAAt(20, 20); got.R != 0xff || got.G != 0 {
		t.Errorf("fill pixel = %v, want red", got)
	}
	if got := b.Image().RGBAAt(10, 20); got.G != 0xff {
		t.Errorf("stroke pixel = %v, want white", got)
	}
	if got := b.Image().RGBAAt(50, 50); got.R != 0 {
		t.Errorf("pixel outside box = %v, want untouched", got)
	}
}

func TestDrawImageScales(t *testing.T) {
	b := newBackend(t)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{G: 0xff, A: 0xff})
	b.DrawImage(src, f32.Pt(10, 10), 2)
	// Source pixel (1,1) covers destination [12,14)x[12,14).
	if got := b.Image().RGBAAt(13, 13); got.G != 0xff {
		t.Errorf("scaled pixel = %v, want green", got)
	}
	if got := b.Image().RGBAAt(11, 11); got.G != 0 {
		t.Errorf("pixel from transparent source = %v, want untouched", got)
	}
}

func TestDrawCheckerboardCovers(t *testing.T) {
	b := newBackend(t)
	b.Clear(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	b.DrawCheckerboard(32, f32.Pt(200, 100))
	// Adjacent tiles blend lighter and darker than the base.
	first := b.Image().RGBAAt(16, 16)
	second := b.Image().RGBAAt(48, 16)
	if first == second {
		t.Errorf("adjacent tiles render identically: %v", first)
	}
}

func anyInk(img *image.RGBA, bounds image.Rectangle) bool {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R != 0 || c.G != 0 || c.B != 0 {
				return true
			}
		}
	}
	return false
}
