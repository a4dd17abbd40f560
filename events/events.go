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

// Package events defines the canonical event types that are passed from the
// input layer to the running game.
//
// KeyEvent is the device independent representation of a musical note
// starting or stopping. It is produced by the userinput package from either a
// MIDI device or the on-screen keyboard. KeystrokeEvent is a raw key
// transition from the window system and is used for exercise controls.
//
// Both types are plain values. For a given note (or key code) a press is
// always followed by exactly one release before the next press. It is the
// responsibility of the producer to maintain that pairing.
package events

import "fmt"

// Kind discriminates between the event types so that listeners can subscribe
// to one kind of event only.
type Kind int

// List of valid Kind values.
const (
	KindKey Kind = iota
	KindKeystroke
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindKeystroke:
		return "keystroke"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is implemented by all event types.
type Event interface {
	Kind() Kind
}

// MaxVelocity is the highest velocity (intensity) value of a KeyEvent.
const MaxVelocity = 127

// KeyEvent is a note press or release.
type KeyEvent struct {
	// the MIDI note number
	Note int

	// the intensity of the note in the range 0 to MaxVelocity
	Velocity int

	Pressed bool
}

// Kind implements the Event interface.
func (ev KeyEvent) Kind() Kind {
	return KindKey
}

func (ev KeyEvent) String() string {
	if ev.Pressed {
		return fmt.Sprintf("note %d on (%d)", ev.Note, ev.Velocity)
	}
	return fmt.Sprintf("note %d off", ev.Note)
}

// KeystrokeEvent is a raw key press or release from the window system. The
// code is an SDL keycode. For printable keys this is the ASCII value of the
// unshifted character.
type KeystrokeEvent struct {
	Code    int
	Pressed bool
}

// Kind implements the Event interface.
func (ev KeystrokeEvent) Kind() Kind {
	return KindKeystroke
}

func (ev KeystrokeEvent) String() string {
	if ev.Pressed {
		return fmt.Sprintf("key %d down", ev.Code)
	}
	return fmt.Sprintf("key %d up", ev.Code)
}

// A small number of keycodes are used by the runner and by the built-in games.
const (
	CodeReturn = 13
	CodeEscape = 27
	CodeSpace  = 32
)
