// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router tracks the per-frame input snapshot and arbitrates
pointer-button ownership between widgets.

At most one widget identity owns the pointer at a time. Ownership is
claimed by the first Activate call that hit-tests the pointer while a
button is freshly pressed, and is held until the claiming button is
released. While held, no other identity is reported active, so a press
cannot leak into widgets the pointer is merely passing over.
*/
package router

import (
	"github.com/luapower/testui/f32"
	"github.com/luapower/testui/io/event"
	"github.com/luapower/testui/io/key"
	"github.com/luapower/testui/io/pointer"
)

// ID identifies a widget for activation purposes. Composite widgets
// give each of their parts a distinct Option so that per-option
// identities cannot collide with plain widget identities the way
// concatenated strings can.
type ID struct {
	Base   string
	Option string
}

// Router is the input arbiter. Its pointer and key snapshot is
// refreshed by Queue once per frame; its activation state persists
// across frames for as long as the owning button is held.
type Router struct {
	pos     f32.Point
	present bool
	buttons [2]bool

	active       ID
	hasActive    bool
	activeButton pointer.Button

	keys map[key.Name]bool
}

// Queue updates the snapshot from driver events. Releasing the button
// that claimed the current activation clears it unconditionally.
func (r *Router) Queue(events ...event.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case pointer.Event:
			switch e.Kind {
			case pointer.Move:
				r.pos = e.Position
				r.present = true
			case pointer.Press:
				r.pos = e.Position
				r.present = true
				r.buttons[e.Button] = true
			case pointer.Release:
				r.pos = e.Position
				r.present = true
				r.buttons[e.Button] = false
				if r.hasActive && e.Button == r.activeButton {
					r.hasActive = false
					r.active = ID{}
				}
			case pointer.Leave:
				r.present = false
			}
		case key.Event:
			if r.keys == nil {
				r.keys = make(map[key.Name]bool)
			}
			switch e.State {
			case key.Press:
				r.keys[e.Name] = true
			case key.Release:
				delete(r.keys, e.Name)
			}
		}
	}
}

// Position returns the pointer position and whether the pointer is
// over the window surface.
func (r *Router) Position() (f32.Point, bool) {
	return r.pos, r.present
}

// Pressed reports whether b is currently held.
func (r *Router) Pressed(b pointer.Button) bool {
	return r.buttons[b]
}

// Held reports whether the key n is currently down.
func (r *Router) Held(n key.Name) bool {
	return r.keys[n]
}

// Active returns the owning identity, if any.
func (r *Router) Active() (ID, bool) {
	return r.active, r.hasActive
}

// ActiveButton returns the button that claimed the current
// activation. It is only meaningful while Active reports an owner.
func (r *Router) ActiveButton() pointer.Button {
	return r.activeButton
}

// HitTest reports whether the pointer is present and inside rect.
func (r *Router) HitTest(rect f32.Rect) bool {
	return r.present && rect.Contains(r.pos)
}

// Activate hit-tests rect for the widget id and arbitrates ownership.
//
// The owning identity keeps reporting active without re-triggering.
// With no owner, a fresh press over rect claims ownership and reports
// justActivated exactly once; the primary button wins when both are
// down. While another identity owns the pointer, id is never reported
// active regardless of hit.
func (r *Router) Activate(id ID, rect f32.Rect) (active, hit, justActivated bool) {
	if r.hasActive {
		if r.active == id {
			return true, true, false
		}
		return false, r.HitTest(rect), false
	}
	hit = r.HitTest(rect)
	if !hit {
		return false, false, false
	}
	switch {
	case r.buttons[pointer.Primary]:
		r.activeButton = pointer.Primary
	case r.buttons[pointer.Secondary]:
		r.activeButton = pointer.Secondary
	default:
		return false, true, false
	}
	r.active = id
	r.hasActive = true
	return true, true, true
}
