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

// Package playmode is the main loop of the program. It drives the window, the
// input adapter and the game.
//
// Each iteration of the loop is one frame:
//
//	1. window events are drained. key transitions are fired as
//	   KeystrokeEvents. a quit event, or the escape key, ends the loop
//	2. the frame is cleared
//	3. the game is updated
//	4. the input adapter is polled and each KeyEvent is fired in turn. the
//	   adapter is drawn if it has a visualisation
//	5. audio is serviced and the frame is presented
//	6. the scheduler is yielded to, giving the game's tasks a chance to run
//
// There is no frame rate limit unless an FPS cap is set in the environment.
//
// Any error ends the loop and is returned by Play().
package playmode
