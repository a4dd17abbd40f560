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

package playmode

import (
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/userinput"
)

// sentinal error returned when the window or the user asks to quit.
const quitEvent = "user input quit event"

// drain window events and fire keystrokes. returns a quitEvent error if the
// loop should end. events after a quit event are not processed
func (pl *playmode) windowEvents() error {
	select {
	case <-pl.intChan:
		return curated.Errorf(quitEvent)
	default:
	}

	for _, ev := range pl.surface.Events() {
		switch ev := ev.(type) {
		case gui.EventQuit:
			return curated.Errorf(quitEvent)

		case gui.EventResize:
			// a window too small for the keyboard is not fatal. the old
			// layout remains in use
			if r, ok := pl.adapter.(userinput.Resizer); ok {
				if err := r.Resize(ev.Width, ev.Height); err != nil {
					logger.Log(pl.env, logTag, err)
				}
			}

		case gui.EventKeyboard:
			err := pl.ctx.Fire(events.KeystrokeEvent{Code: ev.Code, Pressed: ev.Down})
			if err != nil {
				return err
			}
			if ev.Down && ev.Code == events.CodeEscape {
				return curated.Errorf(quitEvent)
			}
		}
	}

	return nil
}
