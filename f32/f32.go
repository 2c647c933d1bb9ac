// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 geometry vocabulary shared by the layout,
input and drawing packages.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rect is an axis aligned rectangle given by its top left
// corner and its size.
type Rect struct {
	X, Y, W, H float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rct is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func Rct(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Min returns r's top left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns r's bottom right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Size returns r's width and height.
func (r Rect) Size() Point {
	return Point{X: r.W, Y: r.H}
}

// Contains reports whether p falls within the closed rectangle
// [X, X+W] x [Y, Y+H]. The bottom right edge is inclusive so that
// a pointer resting on a widget's boundary still hits it.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Add offsets r with the vector p.
func (r Rect) Add(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}
