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

// Package luagame runs games written in Lua.
//
// A script defines a begin() function, which is called once, and optionally
// an update() function, which is called every frame. The script has access to
// the game table:
//
//	game.on_key(function(note, velocity, pressed) end)
//	game.on_keystroke(function(code, pressed) end)
//	game.after(frames, function() end)
//	game.every(frames, function() return done end)
//	game.delay(seconds, function() end)
//	game.note_on(note, velocity)
//	game.note_off(note)
//	game.fill_rect(x, y, w, h, r, g, b)
//	game.size()                  -- returns width, height
//	game.random(low, high)       -- inclusive
//	game.log(message)
//
// The after() and every() functions count frames. The frame rate is not
// limited unless an FPS cap is set, so timings that the player hears should
// use delay(), which measures wall-clock time.
//
// An error raised by the script is returned to the caller in the same way as
// for any other game. Listener callbacks that raise an error are therefore
// fatal unless listener isolation has been enabled.
package luagame
