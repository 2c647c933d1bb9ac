// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker interface for input events
// delivered by a window driver.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
