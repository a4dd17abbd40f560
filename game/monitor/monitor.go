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

// Package monitor is a game that shows the notes being played. It is useful
// for checking that the input device is working.
//
// Held notes are drawn as bars across the top of the window, positioned by
// pitch and sized by velocity. Pressing R forgets all held notes.
package monitor

import (
	"image/color"
	"slices"

	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/logger"
)

// Name of the game as used on the command line.
const Name = "monitor"

// CodeReset is the keycode that forgets all held notes.
const CodeReset = 'r'

// the range of notes shown. the full range of an 88 key piano
const (
	lowest  = 21
	highest = 108
)

var barColour = color.RGBA{R: 250, G: 180, B: 60, A: 255}

// Monitor implements the game.Game interface.
type Monitor struct {
	held    map[int]int
	presses int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor() *Monitor {
	return &Monitor{
		held: make(map[int]int),
	}
}

// Begin implements the game.Game interface.
func (m *Monitor) Begin(ctx *dispatch.Context) error {
	dispatch.OnKey(ctx, func(ev events.KeyEvent) error {
		if ev.Pressed {
			m.held[ev.Note] = ev.Velocity
			m.presses++
		} else {
			delete(m.held, ev.Note)
		}
		logger.Log(ctx.Permission(), Name, ev)
		return nil
	})

	dispatch.OnKeystroke(ctx, func(ev events.KeystrokeEvent) error {
		if ev.Pressed && ev.Code == CodeReset {
			clear(m.held)
			logger.Log(ctx.Permission(), Name, "reset")
		}
		return nil
	})

	return nil
}

// Update implements the game.Game interface.
func (m *Monitor) Update(ctx *dispatch.Context) error {
	canvas := ctx.Canvas()
	if canvas == nil {
		return nil
	}

	w, h := canvas.Size()
	span := highest - lowest + 1
	bw := max(w/span, 1)
	maxHeight := h / 2

	for _, n := range m.Held() {
		if n < lowest || n > highest {
			continue
		}
		x := (n - lowest) * w / span
		bh := max(maxHeight*m.held[n]/events.MaxVelocity, 1)
		if err := canvas.FillRect(x, 0, bw, bh, barColour); err != nil {
			return err
		}
	}

	return nil
}

// Held returns the notes currently held, in ascending order.
func (m *Monitor) Held() []int {
	notes := make([]int, 0, len(m.held))
	for n := range m.held {
		notes = append(notes, n)
	}
	slices.Sort(notes)
	return notes
}

// Presses returns the number of note presses seen.
func (m *Monitor) Presses() int {
	return m.presses
}
