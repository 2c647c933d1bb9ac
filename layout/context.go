// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/paint"
)

// Invalidator schedules a future repaint. It is implemented by the
// frame driver and called by widgets whose interaction mutated a
// value.
type Invalidator interface {
	Invalidate()
}

// Context carries the state needed by every composer operation: the
// flow allocator, the input arbiter, the drawing backend and the
// surface geometry. One Context belongs to one window and is reset
// at the start of every frame.
type Context struct {
	Flow    Flow
	Input   *router.Router
	Backend paint.Backend
	// Size is the client surface size for this frame.
	Size f32.Point

	Redraw Invalidator
}

// Reset prepares the context for a new frame.
func (c *Context) Reset(size f32.Point) {
	c.Size = size
	c.Flow.Reset(size)
}

// Invalidate requests a repaint, if the context has a driver to ask.
func (c *Context) Invalidate() {
	if c.Redraw != nil {
		c.Redraw.Invalidate()
	}
}
