// SPDX-License-Identifier: Unlicense OR MIT

// Package key contains keyboard events produced by a window driver.
package key

// Name is the opaque identifier of a key, as reported by the
// window driver.
type Name string

// Event is a key press or release.
type Event struct {
	Name  Name
	State State
}

// State is the state the key transitioned to.
type State uint8

const (
	// Press of a key.
	Press State = iota
	// Release of a key.
	Release
)

func (Event) ImplementsEvent() {}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unreachable")
	}
}
