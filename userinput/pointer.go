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

package userinput

import (
	"slices"

	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/keyboard"
)

// PointerSource is anything that can report the state of the pointer.
type PointerSource interface {
	Pointer() gui.Pointer
}

// PointerKeyboard is the Adapter for the on-screen keyboard.
//
// A key is pressed when the primary button is held over it. All held keys are
// released when the button is released. Moving the pointer to another key
// with the button held does not release the key that was first pressed, so
// more than one key can be held at once.
type PointerKeyboard struct {
	source PointerSource
	layout *keyboard.Layout
	sink   Sink

	// the set of keys for which a press has been sent but no release
	held map[int]bool
}

// NewPointerKeyboard is the preferred method of initialisation for the
// PointerKeyboard type. The sink can be nil.
func NewPointerKeyboard(source PointerSource, layout *keyboard.Layout, sink Sink) *PointerKeyboard {
	return &PointerKeyboard{
		source: source,
		layout: layout,
		sink:   sink,
		held:   make(map[int]bool),
	}
}

// Poll implements the Adapter interface. Each press and release is also sent
// to the sink.
func (pk *PointerKeyboard) Poll() ([]events.KeyEvent, error) {
	p := pk.source.Pointer()

	if p.Primary {
		note, ok := pk.layout.KeyAt(p.X, p.Y)
		if !ok || pk.held[note] {
			return nil, nil
		}
		pk.held[note] = true
		if pk.sink != nil {
			pk.sink.NoteOn(note, events.MaxVelocity)
		}
		return []events.KeyEvent{{Note: note, Velocity: events.MaxVelocity, Pressed: true}}, nil
	}

	if len(pk.held) == 0 {
		return nil, nil
	}

	var evs []events.KeyEvent
	for _, note := range pk.Held() {
		evs = append(evs, events.KeyEvent{Note: note})
		if pk.sink != nil {
			pk.sink.NoteOff(note)
		}
	}
	clear(pk.held)

	return evs, nil
}

// Held returns the keys that are currently held, in ascending order.
func (pk *PointerKeyboard) Held() []int {
	notes := make([]int, 0, len(pk.held))
	for n := range pk.held {
		notes = append(notes, n)
	}
	slices.Sort(notes)
	return notes
}

// Draw implements the Drawer interface.
func (pk *PointerKeyboard) Draw(canvas gui.Canvas) error {
	return pk.layout.Draw(canvas, func(note int) bool {
		return pk.held[note]
	})
}

// Resize implements the Resizer interface. The layout is rebuilt for the new
// size with the same range of notes. If the new size is too small for a
// keyboard the previous layout is kept and the error returned. Held keys
// remain held.
func (pk *PointerKeyboard) Resize(width int, height int) error {
	low, high := keyboard.DefaultLow, keyboard.DefaultHigh
	if pk.layout != nil {
		low, high = pk.layout.Range()
	}
	l, err := keyboard.NewLayout(low, high, width, height)
	if err != nil {
		return err
	}
	pk.layout = l
	return nil
}

// Layout returns the keyboard layout used for hit testing.
func (pk *PointerKeyboard) Layout() *keyboard.Layout {
	return pk.layout
}
