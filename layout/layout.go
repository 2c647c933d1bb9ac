// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the single-axis flow allocator and the
group stack that widgets draw their rectangles from.

A Flow owns a cursor that advances along the current direction with
every allocation. Groups are nested scopes with their own direction
and size constraints, entered and left in stack discipline. The whole
state is rebuilt from scratch every frame by Reset; nothing layout
related survives a repaint.
*/
package layout

import (
	"github.com/luapower/testui/f32"
)

// Direction is the axis along which allocations advance the cursor.
type Direction uint8

const (
	// Down stacks allocations vertically.
	Down Direction = iota
	// Right flows allocations horizontally.
	Right
)

// Defaults applied by Reset. The maximum size is derived from the
// surface size so that top-level equal-slot groups fill the window.
var (
	DefaultOrigin = f32.Pt(6, 6)
	DefaultMargin = f32.Pt(6, 6)
	DefaultMin    = f32.Pt(24, 24)
)

// Flow is the layout state: the cursor, the cross-axis extent
// consumed since Reset, the active direction and the constraint
// scope. It is mutated in place across the frame.
//
// Min must be componentwise less than or equal to Max; that is the
// caller's contract and is not defended against.
type Flow struct {
	Cursor f32.Point
	// Extent is the largest cross-axis size consumed so far. It is
	// what advances a parent group when a child flowing the other
	// way is closed.
	Extent f32.Point
	Dir    Direction
	Min    f32.Point
	Max    f32.Point
	Margin f32.Point

	stack []scope
}

// scope is the snapshot saved by Enter. The extent is deliberately
// not part of it: it keeps accumulating on behalf of the outer
// scopes, which is what makes a deep pop advance the grandparent by
// the full extent its subtree consumed.
type scope struct {
	dir              Direction
	cursor           f32.Point
	min, max, margin f32.Point
}

// Reset restores the flow to its initial state for a surface of the
// given size: cursor at the origin, direction Down, empty stack.
func (f *Flow) Reset(size f32.Point) {
	f.Cursor = DefaultOrigin
	f.Extent = f32.Point{}
	f.Dir = Down
	f.Min = DefaultMin
	f.Max = f32.Pt(size.X-2*DefaultOrigin.X, size.Y-2*DefaultOrigin.Y)
	f.Margin = DefaultMargin
	f.stack = f.stack[:0]
}

// Depth returns the current group nesting depth.
func (f *Flow) Depth() int {
	return len(f.stack)
}

// Allocate clamps the requested size to the active constraints,
// places the rectangle at the cursor and advances the cursor along
// the flow direction by the clamped size plus the margin. A zero
// request still reserves the minimum size, so captionless controls
// keep their default footprint.
func (f *Flow) Allocate(w, h float32) f32.Rect {
	w = clamp(w, f.Min.X, f.Max.X)
	h = clamp(h, f.Min.Y, f.Max.Y)
	r := f32.Rect{X: f.Cursor.X, Y: f.Cursor.Y, W: w, H: h}
	switch f.Dir {
	case Down:
		f.Cursor.Y += h + f.Margin.Y
		if w > f.Extent.X {
			f.Extent.X = w
		}
	case Right:
		f.Cursor.X += w + f.Margin.X
		if h > f.Extent.Y {
			f.Extent.Y = h
		}
	default:
		panic("layout: invalid Direction")
	}
	return r
}

// Enter pushes the current scope and switches to direction d.
//
// An optional slot count partitions the available extent on d's axis
// into that many equal allocations: min and max on the axis are both
// set to (max - (n-1)*margin) / n, so allocations inside the group
// are fixed-size regardless of their request.
func (f *Flow) Enter(d Direction, slots ...int) {
	f.stack = append(f.stack, scope{
		dir:    f.Dir,
		cursor: f.Cursor,
		min:    f.Min,
		max:    f.Max,
		margin: f.Margin,
	})
	f.Dir = d
	if len(slots) == 0 || slots[0] <= 0 {
		return
	}
	n := float32(slots[0])
	switch d {
	case Right:
		slot := (f.Max.X - (n-1)*f.Margin.X) / n
		f.Min.X, f.Max.X = slot, slot
	case Down:
		slot := (f.Max.Y - (n-1)*f.Margin.Y) / n
		f.Min.Y, f.Max.Y = slot, slot
	default:
		panic("layout: invalid Direction")
	}
}

// Leave pops the innermost group.
//
// Closing a group that flowed the other way than its parent advances
// the parent cursor along the parent axis by the cross extent the
// child consumed, plus the given margin (the parent margin when
// omitted). Closing a group with the parent's own direction is
// transparent to position: only the constraint scope is restored.
func (f *Flow) Leave(margin ...float32) {
	n := len(f.stack)
	if n == 0 {
		panic("layout: unbalanced Leave")
	}
	s := f.stack[n-1]
	f.stack = f.stack[:n-1]
	left := f.Dir
	f.Dir = s.dir
	f.Min, f.Max, f.Margin = s.min, s.max, s.margin
	if left == s.dir {
		return
	}
	f.Cursor = s.cursor
	switch s.dir {
	case Down:
		m := f.Margin.Y
		if len(margin) > 0 {
			m = margin[0]
		}
		f.Cursor.Y += f.Extent.Y + m
	case Right:
		m := f.Margin.X
		if len(margin) > 0 {
			m = margin[0]
		}
		f.Cursor.X += f.Extent.X + m
	}
}

// Next closes the innermost group and immediately opens a sibling
// with the same direction and the same constraints, at the position
// the parent advanced to. It is what steps a fixed-column grid from
// one row to the next without losing the slot partition.
func (f *Flow) Next(margin ...float32) {
	if len(f.stack) == 0 {
		panic("layout: Next outside a group")
	}
	dir, min, max, mar := f.Dir, f.Min, f.Max, f.Margin
	f.Leave(margin...)
	f.stack = append(f.stack, scope{
		dir:    f.Dir,
		cursor: f.Cursor,
		min:    f.Min,
		max:    f.Max,
		margin: f.Margin,
	})
	f.Dir, f.Min, f.Max, f.Margin = dir, min, max, mar
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		panic("unreachable")
	}
}
