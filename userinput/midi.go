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
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/events"
)

// MidiReadError is the pattern used when the device fails to return messages.
const MidiReadError = "midi: %v"

// NoteOnStatus is the status byte that indicates a note has been pressed. Any
// other status byte is treated as a release.
const NoteOnStatus = 0x90

// BatchSize is the maximum number of messages read from the device at once.
const BatchSize = 10

// RawMessage is a three byte message from a MIDI device.
type RawMessage struct {
	Status uint8
	Data1  uint8
	Data2  uint8
}

// RawDevice is an opened MIDI input.
type RawDevice interface {
	// Poll returns true if there are messages waiting to be read. It must not
	// block.
	Poll() bool

	// Read returns up to max waiting messages. It must not block.
	Read(max int) ([]RawMessage, error)
}

// Translate a RawMessage into a KeyEvent.
func Translate(msg RawMessage) events.KeyEvent {
	return events.KeyEvent{
		Note:     int(msg.Data1),
		Velocity: int(msg.Data2),
		Pressed:  msg.Status == NoteOnStatus,
	}
}

// MidiAdapter is the Adapter for a MIDI device. Events from the device are
// passed on unchanged, without any further tracking of key state.
type MidiAdapter struct {
	dev RawDevice
}

// NewMidiAdapter is the preferred method of initialisation for the MidiAdapter
// type.
func NewMidiAdapter(dev RawDevice) *MidiAdapter {
	return &MidiAdapter{dev: dev}
}

// Poll implements the Adapter interface.
func (m *MidiAdapter) Poll() ([]events.KeyEvent, error) {
	var evs []events.KeyEvent

	for m.dev.Poll() {
		msgs, err := m.dev.Read(BatchSize)
		if err != nil {
			return evs, curated.Errorf(MidiReadError, err)
		}
		if len(msgs) == 0 {
			break
		}
		for _, msg := range msgs {
			evs = append(evs, Translate(msg))
		}
	}

	return evs, nil
}
