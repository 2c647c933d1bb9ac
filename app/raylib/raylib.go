// SPDX-License-Identifier: Unlicense OR MIT

// Package raylib implements the window driver and the drawing
// backend on raylib.
package raylib

import (
	"image"
	"image/color"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/event"
	"github.com/luapower/testui/io/key"
	"github.com/luapower/testui/io/pointer"
	"github.com/luapower/testui/paint"
)

const fontSize = 13

// Window is a raylib window. It implements both app.Driver and
// paint.Backend.
type Window struct {
	// Background is the clear color of every frame.
	Background rl.Color
	// BaselineOffset nudges text vertically, for platforms where
	// the default font sits a pixel off center.
	BaselineOffset int32

	col      rl.Color
	lastPos  f32.Point
	onScreen bool
	pumped   bool
	keysDown map[int32]bool
	textures map[image.Image]rl.Texture2D
}

var pollInput = rl.PollInputEvents

var mouseButtons = [2]rl.MouseButton{
	pointer.Primary:   rl.MouseButtonLeft,
	pointer.Secondary: rl.MouseButtonRight,
}

// NewWindow opens a resizable window. Call Close when done.
func NewWindow(width, height int, title string) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(60)
	return &Window{
		Background: rl.NewColor(0x28, 0x28, 0x28, 0xff),
		col:        rl.White,
		keysDown:   make(map[int32]bool),
		textures:   make(map[image.Image]rl.Texture2D),
	}
}

// Close releases the textures and the window.
func (w *Window) Close() {
	for _, tex := range w.textures {
		rl.UnloadTexture(tex)
	}
	rl.CloseWindow()
}

// Events polls raylib state and translates transitions into events.
//
// raylib only pumps its event queue inside EndDrawing, so an
// on-demand loop that skips the draw would otherwise read the same
// stale input (and close flag) forever. Events pumps the queue
// itself on iterations where no frame was drawn.
func (w *Window) Events() []event.Event {
	w.pump()
	var s snapshot
	s.onScreen = rl.IsCursorOnScreen()
	if s.onScreen {
		pos := rl.GetMousePosition()
		s.pos = f32.Pt(pos.X, pos.Y)
	}
	for b, rb := range mouseButtons {
		s.pressed[b] = rl.IsMouseButtonPressed(rb)
		s.released[b] = rl.IsMouseButtonReleased(rb)
	}
	events := w.pointerEvents(s)
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		w.keysDown[k] = true
		events = append(events, key.Event{Name: keyName(k), State: key.Press})
	}
	for k := range w.keysDown {
		if rl.IsKeyUp(k) {
			delete(w.keysDown, k)
			events = append(events, key.Event{Name: keyName(k), State: key.Release})
		}
	}
	return events
}

// pump refreshes raylib's input and window state unless EndDrawing
// already did on the last iteration; a second poll would eat the
// single-iteration press and release transitions.
func (w *Window) pump() {
	if !w.pumped {
		pollInput()
	}
	w.pumped = false
}

// snapshot is one iteration's pointer state as read from raylib.
type snapshot struct {
	onScreen          bool
	pos               f32.Point
	pressed, released [2]bool
}

// pointerEvents translates a snapshot into events against the state
// of the previous iteration. Button transitions are reported even
// while the cursor is off the window, at its last known position, so
// a drag released outside still unclaims the arbiter; the Leave is
// ordered after the release for the same reason.
func (w *Window) pointerEvents(s snapshot) []event.Event {
	var events []event.Event
	pos := w.lastPos
	if s.onScreen {
		pos = s.pos
		if !w.onScreen || pos != w.lastPos {
			events = append(events, pointer.Event{Kind: pointer.Move, Position: pos})
		}
		w.lastPos = pos
	}
	for b := range mouseButtons {
		if s.pressed[b] {
			events = append(events, pointer.Event{Kind: pointer.Press, Position: pos, Button: pointer.Button(b)})
		}
		if s.released[b] {
			events = append(events, pointer.Event{Kind: pointer.Release, Position: pos, Button: pointer.Button(b)})
		}
	}
	if !s.onScreen && w.onScreen {
		events = append(events, pointer.Event{Kind: pointer.Leave})
	}
	w.onScreen = s.onScreen
	return events
}

func keyName(k int32) key.Name {
	if k >= ' ' && k < 127 {
		return key.Name(rune(k))
	}
	return key.Name("#" + strconv.Itoa(int(k)))
}

func (w *Window) Size() f32.Point {
	return f32.Pt(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (w *Window) Closed() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Begin() {
	rl.BeginDrawing()
	rl.ClearBackground(w.Background)
}

func (w *Window) End() {
	rl.EndDrawing()
	w.pumped = true
}

func (w *Window) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

func (w *Window) SetFPSCap(fps int) {
	rl.SetTargetFPS(int32(fps))
}

func (w *Window) SetColor(col color.NRGBA) {
	w.col = rlColor(col)
}

// MeasureText reports the advance of s. Bold text is emulated by a
// one pixel double strike, hence the extra pixel.
func (w *Window) MeasureText(s string, bold bool) float32 {
	width := rl.MeasureText(s, fontSize)
	if bold {
		width++
	}
	return float32(width)
}

func (w *Window) DrawText(s string, halign, valign paint.Align, r f32.Rect, bold bool, col color.NRGBA) float32 {
	c := w.col
	if col.A != 0 {
		c = rlColor(col)
	}
	width := w.MeasureText(s, bold)
	var x float32
	switch halign {
	case paint.Start:
		x = r.X
	case paint.Middle:
		x = r.X + (r.W-width)/2
	case paint.End:
		x = r.X + r.W - width
	}
	var y float32
	switch valign {
	case paint.Start:
		y = r.Y
	case paint.Middle:
		y = r.Y + (r.H-fontSize)/2
	case paint.End:
		y = r.Y + r.H - fontSize
	}
	iy := int32(y) + w.BaselineOffset
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
	rl.DrawText(s, int32(x), iy, fontSize, c)
	if bold {
		rl.DrawText(s, int32(x)+1, iy, fontSize, c)
	}
	rl.EndScissorMode()
	if width > r.W {
		width = r.W
	}
	return width
}

func (w *Window) DrawBox(r f32.Rect, fill, stroke *color.NRGBA) {
	if fill != nil {
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rlColor(*fill))
	}
	if stroke != nil {
		rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rlColor(*stroke))
	}
}

// DrawImage blits img as a texture. Textures are cached per source
// image; callers animating pixel buffers should swap images rather
// than mutate one in place.
func (w *Window) DrawImage(img image.Image, pos f32.Point, scale float32) {
	tex, ok := w.textures[img]
	if !ok {
		ri := rl.NewImageFromImage(img)
		tex = rl.LoadTextureFromImage(ri)
		rl.UnloadImage(ri)
		w.textures[img] = tex
	}
	rl.DrawTextureEx(tex, rl.NewVector2(pos.X, pos.Y), 0, scale, rl.White)
}

func (w *Window) DrawCheckerboard(square float32, size f32.Point) {
	light := rl.Fade(rl.White, 0.12)
	dark := rl.Fade(rl.Black, 0.12)
	paint.CheckerTiles(square, size, func(r f32.Rect, isDark bool) {
		c := light
		if isDark {
			c = dark
		}
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
	})
}

func rlColor(col color.NRGBA) rl.Color {
	return rl.NewColor(col.R, col.G, col.B, col.A)
}
