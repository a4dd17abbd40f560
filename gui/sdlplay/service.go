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

package sdlplay

import (
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason; we only want one value per frame
	// which we can do with a single call to GetMouseState()
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Events implements the gui.Surface interface. All waiting events are
// drained. Key repeats are not returned.
func (scr *SdlPlay) Events() []gui.Event {
	var evs []gui.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			evs = append(evs, gui.EventQuit{})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				scr.width = int(ev.Data1)
				scr.height = int(ev.Data2)
				evs = append(evs, gui.EventResize{Width: scr.width, Height: scr.height})
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				evs = append(evs, gui.EventKeyboard{
					Code: int(ev.Keysym.Sym),
					Name: sdl.GetKeyName(ev.Keysym.Sym),
					Down: true})
			case sdl.KEYUP:
				evs = append(evs, gui.EventKeyboard{
					Code: int(ev.Keysym.Sym),
					Name: sdl.GetKeyName(ev.Keysym.Sym),
					Down: false})
			}
		}
	}

	return evs
}
