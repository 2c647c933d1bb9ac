// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/pointer"
	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/layout"
	"github.com/luapower/testui/paint"
	"github.com/luapower/testui/widget"
)

// testBackend records draw calls with fixed metrics: 7 px per rune,
// 8 when bold, so widget geometry is predictable.
type testBackend struct {
	texts       []string
	boxes       []f32.Rect
	images      int
	checkerSize f32.Point
}

func (b *testBackend) SetColor(color.NRGBA) {}

func (b *testBackend) MeasureText(s string, bold bool) float32 {
	px := 7
	if bold {
		px = 8
	}
	return float32(px * len(s))
}

func (b *testBackend) DrawText(s string, halign, valign paint.Align, r f32.Rect, bold bool, col color.NRGBA) float32 {
	b.texts = append(b.texts, s)
	w := b.MeasureText(s, bold)
	if w > r.W {
		w = r.W
	}
	return w
}

func (b *testBackend) DrawBox(r f32.Rect, fill, stroke *color.NRGBA) {
	b.boxes = append(b.boxes, r)
}

func (b *testBackend) DrawImage(img image.Image, pos f32.Point, scale float32) {
	b.images++
}

func (b *testBackend) DrawCheckerboard(square float32, size f32.Point) {
	b.checkerSize = size
}

type redrawCounter int

func (r *redrawCounter) Invalidate() { *r++ }

type fixture struct {
	gtx     *layout.Context
	input   *router.Router
	backend *testBackend
	redraws redrawCounter
}

func newFixture() *fixture {
	f := &fixture{
		input:   new(router.Router),
		backend: new(testBackend),
	}
	f.gtx = &layout.Context{
		Input:   f.input,
		Backend: f.backend,
		Redraw:  &f.redraws,
	}
	f.frame()
	return f
}

// frame starts a new repaint, the way the driver would.
func (f *fixture) frame() {
	f.gtx.Reset(f32.Pt(800, 600))
}

func (f *fixture) move(x, y float32) {
	f.input.Queue(pointer.Event{Kind: pointer.Move, Position: f32.Pt(x, y)})
}

func (f *fixture) press(b pointer.Button, x, y float32) {
	f.input.Queue(pointer.Event{Kind: pointer.Press, Position: f32.Pt(x, y), Button: b})
}

func (f *fixture) release(b pointer.Button, x, y float32) {
	f.input.Queue(pointer.Event{Kind: pointer.Release, Position: f32.Pt(x, y), Button: b})
}

func TestButtonTogglesOncePerPress(t *testing.T) {
	f := newFixture()
	// "Go" measures 14, plus padding: rect (6, 6, 38, 24).
	f.press(pointer.Primary, 10, 10)

	clicked, sel := widget.Button(f.gtx, "b", "Go", false)
	if !clicked || !sel {
		t.Fatalf("press frame: clicked=%v sel=%v, want true,true", clicked, sel)
	}

	// Held across the next frame: no re-trigger, selection passes
	// through unchanged.
	f.frame()
	clicked, sel = widget.Button(f.gtx, "b", "Go", sel)
	if clicked || !sel {
		t.Fatalf("held frame: clicked=%v sel=%v, want false,true", clicked, sel)
	}

	f.release(pointer.Primary, 10, 10)
	f.frame()
	clicked, sel = widget.Button(f.gtx, "b", "Go", sel)
	if clicked || !sel {
		t.Fatalf("release frame: clicked=%v sel=%v, want false,true", clicked, sel)
	}
}

func TestButtonMiss(t *testing.T) {
	f := newFixture()
	f.press(pointer.Primary, 500, 500)
	clicked, sel := widget.Button(f.gtx, "b", "Go", false)
	if clicked || sel {
		t.Errorf("missed press: clicked=%v sel=%v, want false,false", clicked, sel)
	}
}

func TestEnumReplacesValue(t *testing.T) {
	f := newFixture()
	opts := []string{"move", "scale", "rotate"}
	// Options stack vertically with zero margin, 24 high each:
	// "scale" occupies y in [30, 54].
	f.press(pointer.Primary, 10, 40)
	activated, value := widget.Enum(f.gtx, "tool", opts, "move", nil)
	if activated != "scale" || value != "scale" {
		t.Errorf("activated=%q value=%q, want scale,scale", activated, value)
	}

	// No interaction: value passes through, nothing activates.
	f.release(pointer.Primary, 10, 40)
	f.frame()
	activated, value = widget.Enum(f.gtx, "tool", opts, value, nil)
	if activated != "" || value != "scale" {
		t.Errorf("idle frame: activated=%q value=%q, want \"\",scale", activated, value)
	}
}

func TestEnumLabelFn(t *testing.T) {
	f := newFixture()
	widget.Enum(f.gtx, "tool", []string{"a", "b"}, "a", func(s string) string {
		return "opt-" + s
	})
	want := []string{"opt-a", "opt-b"}
	if diff := cmp.Diff(want, f.backend.texts); diff != "" {
		t.Errorf("captions (-want +got):\n%s", diff)
	}
}

func TestChecklistTogglesNonDestructively(t *testing.T) {
	f := newFixture()
	opts := []string{"a", "b", "k"}
	orig := map[string]bool{"a": true, "b": true}

	// "k" is the third option: y in [54, 78].
	f.press(pointer.Primary, 10, 60)
	activated, value := widget.Checklist(f.gtx, "set", opts, orig, nil)
	if activated != "k" {
		t.Fatalf("activated = %q, want k", activated)
	}
	if diff := cmp.Diff(map[string]bool{"a": true, "b": true, "k": true}, value); diff != "" {
		t.Errorf("toggled-in set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]bool{"a": true, "b": true}, orig); diff != "" {
		t.Errorf("caller's set was mutated (-want +got):\n%s", diff)
	}

	// Toggling a member removes it.
	f.release(pointer.Primary, 10, 60)
	f.press(pointer.Primary, 10, 60)
	f.frame()
	_, value = widget.Checklist(f.gtx, "set", opts, value, nil)
	if diff := cmp.Diff(map[string]bool{"a": true, "b": true}, value); diff != "" {
		t.Errorf("toggled-out set (-want +got):\n%s", diff)
	}
}

func TestChecklistSingleActivationPerFrame(t *testing.T) {
	f := newFixture()
	// The pointer can only be over one option, and ownership
	// arbitration caps activations at one per press anyway.
	f.press(pointer.Primary, 10, 10)
	activated, _ := widget.Checklist(f.gtx, "set", []string{"a", "b"}, nil, nil)
	if activated != "a" {
		t.Errorf("activated = %q, want a", activated)
	}
}

// Slider rect is (6, 6, 200, 24): x maps [6, 206] onto the range.
func TestSliderPrimaryDrag(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float64
	}{
		{"left edge", 6, 0},
		{"midpoint", 106, 5},
		{"right edge", 206, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.press(pointer.Primary, tc.x, 10)
			got, changed := widget.Slider(f.gtx, "s", "Speed", 3, 0, 10, 1, 5)
			if got != tc.want || !changed {
				t.Errorf("Slider = %v, %v; want %v, true", got, changed, tc.want)
			}
		})
	}
}

func TestSliderUnchangedValue(t *testing.T) {
	f := newFixture()
	f.press(pointer.Primary, 106, 10)
	got, changed := widget.Slider(f.gtx, "s", "Speed", 5, 0, 10, 1, 5)
	if got != 5 || changed {
		t.Errorf("Slider = %v, %v; want 5, false", got, changed)
	}
	if f.redraws != 0 {
		t.Errorf("redraws = %d, want 0 for an unchanged value", f.redraws)
	}
}

func TestSliderSecondaryResets(t *testing.T) {
	f := newFixture()
	f.press(pointer.Secondary, 180, 10)
	got, changed := widget.Slider(f.gtx, "s", "Speed", 7, 0, 10, 1, 5)
	if got != 5 || !changed {
		t.Errorf("Slider = %v, %v; want default 5, true", got, changed)
	}
}

func TestSliderSecondaryWithoutDefault(t *testing.T) {
	f := newFixture()
	f.press(pointer.Secondary, 180, 10)
	got, changed := widget.Slider(f.gtx, "s", "Speed", 7, 0, 10, 1)
	if got != 7 || changed {
		t.Errorf("Slider = %v, %v; want 7, false", got, changed)
	}
}

func TestSliderChangeInvalidates(t *testing.T) {
	f := newFixture()
	f.press(pointer.Primary, 206, 10)
	widget.Slider(f.gtx, "s", "Speed", 3, 0, 10, 1, 5)
	if f.redraws != 1 {
		t.Errorf("redraws = %d, want 1", f.redraws)
	}
}

func TestSliderSnapsToStep(t *testing.T) {
	f := newFixture()
	// x=80 maps to (80-6)/200 * 10 = 3.7, snapped to 3.5 by a
	// step of 0.5.
	f.press(pointer.Primary, 80, 10)
	got, _ := widget.Slider(f.gtx, "s", "Speed", 0, 0, 10, 0.5)
	if got != 3.5 {
		t.Errorf("Slider = %v, want 3.5", got)
	}
}

func TestLabelsAndHeading(t *testing.T) {
	f := newFixture()
	widget.Heading(f.gtx, "Title")
	widget.Label(f.gtx, "body")
	want := []string{"Title", "body"}
	if diff := cmp.Diff(want, f.backend.texts); diff != "" {
		t.Errorf("texts (-want +got):\n%s", diff)
	}
	// Heading is bold: 8 px per rune plus padding.
	if got := f.gtx.Flow.Extent.X; got != 8*5+2*widget.TextPad {
		t.Errorf("heading width = %v", got)
	}
}

func TestImageAllocatesScaledRect(t *testing.T) {
	f := newFixture()
	img := image.NewRGBA(image.Rect(0, 0, 20, 30))
	widget.Image(f.gtx, img, 2)
	if f.backend.images != 1 {
		t.Fatalf("images drawn = %d, want 1", f.backend.images)
	}
	// 40x60 after scaling; the cursor advances by the height plus
	// the margin.
	if got := f.gtx.Flow.Cursor.Y; got != 6+60+6 {
		t.Errorf("cursor.Y = %v, want %v", got, 6+60+6)
	}
}

func TestCheckerboardIgnoresCursor(t *testing.T) {
	f := newFixture()
	cursor := f.gtx.Flow.Cursor
	widget.Checkerboard(f.gtx, 16)
	if f.gtx.Flow.Cursor != cursor {
		t.Error("checkerboard moved the layout cursor")
	}
	if f.backend.checkerSize != f.gtx.Size {
		t.Errorf("checkerboard size = %v, want full surface %v", f.backend.checkerSize, f.gtx.Size)
	}
}
