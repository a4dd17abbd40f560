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

// Package synth is a small polyphonic synthesiser. It is the sink for notes
// played on the on-screen keyboard and for prompts played by a game.
//
// A voice is either a sine wave or, if an instrument sample has been loaded,
// the sample played back at a pitch relative to its root note. Each voice has
// a short linear attack and a longer linear release.
//
// Audio is pulled from the synthesiser with the Generate() function. The
// synthesiser does not know anything about how the audio is played.
package synth
