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

// Package keyboard describes the geometry of an on-screen piano keyboard. The
// Layout type is used both to find the key under a screen position and to draw
// the keyboard to a gui.Canvas.
//
// The keyboard occupies the lower part of the window. White keys are of equal
// width and fill the width of the window. Black keys are narrower and shorter
// and sit on top of the white keys, so they take precedence when hit testing.
package keyboard
