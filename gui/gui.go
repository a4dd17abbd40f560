// This file is part of Eartrainer.
//
// Eartrainer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Eartrainer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Eartrainer.  If not, see <https://www.gnu.org/licenses/>.

// Package gui defines the interface between the main loop and the window
// system. The sdlplay package is the SDL implementation. The Stub type is a
// headless implementation that replays a scripted list of events, which is
// useful for testing.
//
// The window system is only ever serviced from the #mainthread.
package gui

import "image/color"

// Canvas is the drawing surface that games and the on-screen keyboard draw
// on. Coordinates are in window pixels with the origin at the top-left.
type Canvas interface {
	// Size of the drawable area
	Size() (width int, height int)

	// FillRect fills a rectangle with a solid colour
	FillRect(x, y, w, h int, col color.RGBA) error
}

// Pointer is the state of the pointing device (usually the mouse) at the time
// of the call.
type Pointer struct {
	X, Y int

	// whether the primary button is being held
	Primary bool
}

// Surface is the window that the main loop drives. All functions MUST ONLY be
// called from the #mainthread.
type Surface interface {
	Canvas

	// Events returns all window events that have been queued since the
	// previous call. Returns an empty slice if there are none. Never blocks.
	Events() []Event

	// Pointer returns the current pointer state
	Pointer() Pointer

	// Clear prepares the frame for drawing
	Clear() error

	// Present makes the drawn frame visible
	Present() error

	// Destroy releases all resources used by the surface
	Destroy()
}
