// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer contains pointer events produced by a window driver.
package pointer

import (
	"github.com/luapower/testui/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the pointer position in window coordinates.
	// It is valid for every Kind except Leave.
	Position f32.Point
	// Button is the button that changed state. It is only
	// valid for Press and Release events.
	Button Button
}

// Kind of an Event.
type Kind uint8

// Button is a pointer button.
type Button uint8

const (
	// Move of the pointer within the window.
	Move Kind = iota
	// Press of a pointer button.
	Press
	// Release of a pointer button.
	Release
	// Leave reports that the pointer left the window surface.
	Leave
)

const (
	// Primary is the primary pointer button, usually the left
	// mouse button.
	Primary Button = iota
	// Secondary is the secondary pointer button, usually the
	// right mouse button.
	Secondary
)

func (Event) ImplementsEvent() {}

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Leave:
		return "Leave"
	default:
		panic("unreachable")
	}
}

func (b Button) String() string {
	switch b {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	default:
		panic("unreachable")
	}
}
