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
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
)

const logTag = "userinput"

// Adapter is the interface for a source of KeyEvents.
type Adapter interface {
	// Poll returns the KeyEvents that have occurred since the previous call
	// to Poll(). It must never block.
	Poll() ([]events.KeyEvent, error)
}

// Drawer is implemented by adapters that draw something to the screen every
// frame.
type Drawer interface {
	Draw(canvas gui.Canvas) error
}

// Sink receives notes that should be sounded.
type Sink interface {
	NoteOn(note int, velocity int)
	NoteOff(note int)
}

// Resizer is implemented by adapters that depend on the size of the window.
type Resizer interface {
	Resize(width int, height int) error
}

// Detector finds a MIDI input device. The boolean result is false if there is
// no device available.
type Detector interface {
	Detect() (RawDevice, bool)
}

// Select returns the adapter to use for the run of the program. If the
// detector finds a MIDI device then a MidiAdapter is returned, otherwise the
// fallback adapter is returned.
//
// The detector can be nil.
func Select(perm logger.Permission, det Detector, fallback Adapter) Adapter {
	if det != nil {
		if dev, ok := det.Detect(); ok {
			logger.Log(perm, logTag, "using MIDI input")
			return NewMidiAdapter(dev)
		}
	}
	logger.Log(perm, logTag, "no MIDI input found. using on-screen keyboard")
	return fallback
}
