// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app drives the per-frame engine loop against a window driver.

A Window owns the layout context and the input arbiter, feeds driver
events into the arbiter, resets the flow once per repaint and runs the
caller's frame function. Failures in the frame function are contained
at this boundary: the drawing pass is always closed and the failure is
logged, deduplicated against the previously logged message so a broken
frame does not flood the log at repaint rate.
*/
package app

import (
	"fmt"
	"log"

	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/event"
	"github.com/luapower/testui/io/router"
	"github.com/luapower/testui/layout"
	"github.com/luapower/testui/paint"
)

// Driver is the native window and event source.
type Driver interface {
	// Events drains the input events received since the last call.
	Events() []event.Event
	// Size returns the current client surface size.
	Size() f32.Point
	// Closed reports whether the window was asked to close.
	Closed() bool
	// Begin enters a drawing pass.
	Begin()
	// End closes the drawing pass and presents the frame. It must
	// leave the drawing context valid for the next pass.
	End()
	SetTitle(title string)
	// SetFPSCap caps the repaint rate in continuous mode. Zero
	// means uncapped.
	SetFPSCap(fps int)
}

// Mode selects the repaint cadence.
type Mode uint8

const (
	// OnDemand repaints only when input arrived or a repaint was
	// requested through Invalidate.
	OnDemand Mode = iota
	// Continuous repaints every loop iteration, subject to the
	// driver's FPS cap.
	Continuous
)

// Option alters a Window configuration.
type Option func(*Window)

// Title sets the window title.
func Title(title string) Option {
	return func(w *Window) {
		w.drv.SetTitle(title)
	}
}

// RepaintMode selects on-demand or continuous repainting.
func RepaintMode(m Mode) Option {
	return func(w *Window) {
		w.mode = m
	}
}

// FPSCap caps the continuous repaint rate. Zero uncaps it.
func FPSCap(fps int) Option {
	return func(w *Window) {
		w.drv.SetFPSCap(fps)
	}
}

// Window is the frame driver. It is not safe for concurrent use; the
// whole engine runs single threaded inside Run.
type Window struct {
	drv     Driver
	backend paint.Backend
	input   router.Router
	gtx     layout.Context
	mode    Mode
	invalid bool
	lastErr string
}

// NewWindow wraps a driver and a drawing backend. The first frame is
// always drawn.
func NewWindow(drv Driver, backend paint.Backend, opts ...Option) *Window {
	w := &Window{
		drv:     drv,
		backend: backend,
		invalid: true,
	}
	w.gtx.Input = &w.input
	w.gtx.Backend = backend
	w.gtx.Redraw = w
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Invalidate schedules a repaint. Widgets call it through the context
// when an interaction mutated a value.
func (w *Window) Invalidate() {
	w.invalid = true
}

// Run loops until the driver reports the window closed, invoking
// frame once per repaint with the context reset and the input
// snapshot populated.
func (w *Window) Run(frame func(gtx *layout.Context) error) {
	for !w.drv.Closed() {
		w.Frame(frame)
	}
}

// Frame runs a single loop iteration: route pending events, then
// repaint if the cadence calls for it.
func (w *Window) Frame(frame func(gtx *layout.Context) error) {
	events := w.drv.Events()
	if len(events) > 0 {
		w.invalid = true
	}
	w.input.Queue(events...)
	if w.mode == OnDemand && !w.invalid {
		return
	}
	w.invalid = false
	w.drv.Begin()
	defer w.drv.End()
	w.gtx.Reset(w.drv.Size())
	if err := runFrame(frame, &w.gtx); err != nil {
		w.logErr(err)
	}
}

// runFrame contains a frame function failure, turning panics into
// errors so the deferred End above still closes the drawing pass.
func runFrame(frame func(gtx *layout.Context) error, gtx *layout.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame panic: %v", r)
		}
	}()
	return frame(gtx)
}

func (w *Window) logErr(err error) {
	msg := err.Error()
	if msg == w.lastErr {
		return
	}
	w.lastErr = msg
	log.Printf("testui: frame failed: %s", msg)
}
