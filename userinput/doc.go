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

// Package userinput turns input from the user's hardware into the canonical
// KeyEvent type of the events package.
//
// There are two sources of input, each with its own Adapter implementation.
// The MidiAdapter reads raw messages from a MIDI input device. The
// PointerKeyboard maps the pointer position onto an on-screen keyboard and
// keeps track of which keys are held.
//
// Only one Adapter is in use for a run of the program. The Select() function
// makes that choice at startup, depending on whether a MIDI device can be
// found.
package userinput
