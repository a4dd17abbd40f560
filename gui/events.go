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

package gui

// Event represents a window system event. Mouse button and motion events are
// not forwarded. The pointer is sampled once per frame with Surface.Pointer()
// instead.
type Event interface{}

// EventQuit is sent when the window has been closed.
type EventQuit struct{}

// EventResize is sent when the size of the window has changed. Size() reports
// the new size by the time the event is received.
type EventResize struct {
	Width  int
	Height int
}

// EventKeyboard is sent when a key is pressed or released. Auto-repeat key
// presses are not sent.
type EventKeyboard struct {
	// the keycode of the key. SDL keycodes are used by the sdlplay
	// implementation. for printable keys this is the unshifted ASCII value
	Code int

	// the name of the key. useful for logging only
	Name string

	Down bool
}
