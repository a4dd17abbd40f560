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

// Package mididevice finds and opens a MIDI input device. An opened Device
// satisfies the userinput.RawDevice interface.
//
// Messages from the device arrive on a goroutine managed by the gomidi
// package. They are placed in a buffer and are collected by the main loop
// with the Poll() and Read() functions, neither of which ever blocks.
//
// The rtmidi driver requires cgo. Building with the nomidi tag removes the
// driver, in which case no device will ever be found.
package mididevice
