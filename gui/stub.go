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

import "image/color"

// Rect is a filled rectangle as recorded by the Stub surface.
type Rect struct {
	X, Y, W, H int
	Col        color.RGBA
}

// Stub is a headless implementation of the Surface interface. Each call to
// Events() returns the next frame of scripted events and each call to
// Pointer() returns the next scripted pointer state. When the scripts have
// been exhausted, Events() returns nothing and Pointer() returns the last
// pointer state.
type Stub struct {
	Width  int
	Height int

	// scripted window events. one slice per frame
	Frames [][]Event

	// scripted pointer states. one entry per frame
	Pointers []Pointer

	// the rectangles filled since the last Clear()
	Rects []Rect

	// the number of calls to Present()
	Presented int

	pointer Pointer
}

// Size implements the Canvas interface.
func (stb *Stub) Size() (int, int) {
	return stb.Width, stb.Height
}

// FillRect implements the Canvas interface.
func (stb *Stub) FillRect(x, y, w, h int, col color.RGBA) error {
	stb.Rects = append(stb.Rects, Rect{X: x, Y: y, W: w, H: h, Col: col})
	return nil
}

// Events implements the Surface interface.
func (stb *Stub) Events() []Event {
	if len(stb.Frames) == 0 {
		return nil
	}
	ev := stb.Frames[0]
	stb.Frames = stb.Frames[1:]
	return ev
}

// Pointer implements the Surface interface.
func (stb *Stub) Pointer() Pointer {
	if len(stb.Pointers) > 0 {
		stb.pointer = stb.Pointers[0]
		stb.Pointers = stb.Pointers[1:]
	}
	return stb.pointer
}

// Clear implements the Surface interface.
func (stb *Stub) Clear() error {
	stb.Rects = stb.Rects[:0]
	return nil
}

// Present implements the Surface interface.
func (stb *Stub) Present() error {
	stb.Presented++
	return nil
}

// Destroy implements the Surface interface.
func (stb *Stub) Destroy() {
}
