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

package userinput_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/keyboard"
	"github.com/jetsetilly/eartrainer/test"
	"github.com/jetsetilly/eartrainer/userinput"
)

// sink records calls to NoteOn() and NoteOff()
type sink struct {
	calls []string
}

func (s *sink) NoteOn(note int, velocity int) {
	s.calls = append(s.calls, fmt.Sprintf("on %d %d", note, velocity))
}

func (s *sink) NoteOff(note int) {
	s.calls = append(s.calls, fmt.Sprintf("off %d", note))
}

// positions on an 880x600 window with the default keyboard range
var (
	overC4     = gui.Pointer{X: 300, Y: 580, Primary: true}
	overD4     = gui.Pointer{X: 340, Y: 580, Primary: true}
	overCsharp = gui.Pointer{X: 320, Y: 450, Primary: true}
	overNone   = gui.Pointer{X: 300, Y: 100, Primary: true}
	released   = gui.Pointer{X: 300, Y: 580}
)

func newPointerKeyboard(t *testing.T, pointers ...gui.Pointer) (*userinput.PointerKeyboard, *sink, *gui.Stub) {
	t.Helper()
	stb := &gui.Stub{Width: 880, Height: 600, Pointers: pointers}
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, stb.Width, stb.Height)
	test.DemandSuccess(t, err)
	snk := &sink{}
	return userinput.NewPointerKeyboard(stb, l, snk), snk, stb
}

func poll(t *testing.T, pk *userinput.PointerKeyboard) []events.KeyEvent {
	t.Helper()
	evs, err := pk.Poll()
	test.DemandSuccess(t, err)
	return evs
}

func TestPressAndRelease(t *testing.T) {
	pk, snk, _ := newPointerKeyboard(t, overC4, released)

	evs := poll(t, pk)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], events.KeyEvent{Note: 60, Velocity: 127, Pressed: true})
	test.ExpectEquality(t, len(pk.Held()), 1)

	evs = poll(t, pk)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0], events.KeyEvent{Note: 60, Velocity: 0, Pressed: false})
	test.ExpectEquality(t, len(pk.Held()), 0)

	test.DemandEquality(t, len(snk.calls), 2)
	test.ExpectEquality(t, snk.calls[0], "on 60 127")
	test.ExpectEquality(t, snk.calls[1], "off 60")

	// nothing more happens while the button stays up
	evs = poll(t, pk)
	test.ExpectEquality(t, len(evs), 0)
	test.ExpectEquality(t, len(snk.calls), 2)
}

func TestHoldDoesNotRepeat(t *testing.T) {
	pk, snk, _ := newPointerKeyboard(t, overC4, overC4, overC4, overC4)

	var presses int
	for range 4 {
		for _, ev := range poll(t, pk) {
			if ev.Pressed {
				presses++
			}
		}
	}
	test.ExpectEquality(t, presses, 1)
	test.ExpectEquality(t, len(snk.calls), 1)
}

func TestPressOutsideKeys(t *testing.T) {
	pk, snk, _ := newPointerKeyboard(t, overNone, released)
	test.ExpectEquality(t, len(poll(t, pk)), 0)
	test.ExpectEquality(t, len(poll(t, pk)), 0)
	test.ExpectEquality(t, len(snk.calls), 0)
}

func TestDragAcrossKeys(t *testing.T) {
	// dragging does not release the previous key. all keys are released, in
	// ascending order, when the button is released
	pk, snk, _ := newPointerKeyboard(t, overD4, overCsharp, overC4, overD4, released)

	var presses []int
	for range 4 {
		for _, ev := range poll(t, pk) {
			test.ExpectEquality(t, ev.Pressed, true)
			presses = append(presses, ev.Note)
		}
	}
	test.DemandEquality(t, len(presses), 3)
	test.ExpectEquality(t, presses[0], 62)
	test.ExpectEquality(t, presses[1], 61)
	test.ExpectEquality(t, presses[2], 60)

	evs := poll(t, pk)
	test.DemandEquality(t, len(evs), 3)
	for i, n := range []int{60, 61, 62} {
		test.ExpectEquality(t, evs[i], events.KeyEvent{Note: n})
	}
	test.ExpectEquality(t, len(pk.Held()), 0)

	test.DemandEquality(t, len(snk.calls), 6)
	test.ExpectEquality(t, snk.calls[3], "off 60")
	test.ExpectEquality(t, snk.calls[5], "off 62")
}

func TestPairing(t *testing.T) {
	// a long random-looking gesture sequence. for every note there is never
	// more than one press without an intervening release
	script := []gui.Pointer{
		overC4, overD4, overC4, released, released, overCsharp, overNone,
		overCsharp, overD4, released, overC4, released, overD4, overD4,
	}
	pk, _, _ := newPointerKeyboard(t, script...)

	state := make(map[int]bool)
	for range script {
		for _, ev := range poll(t, pk) {
			test.ExpectInequality(t, state[ev.Note], ev.Pressed, ev)
			state[ev.Note] = ev.Pressed
		}
		if len(pk.Held()) == 0 {
			for n, held := range state {
				test.ExpectEquality(t, held, false, n)
			}
		}
	}
}

func TestNilSink(t *testing.T) {
	stb := &gui.Stub{Width: 880, Height: 600, Pointers: []gui.Pointer{overC4, released}}
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, stb.Width, stb.Height)
	test.DemandSuccess(t, err)
	pk := userinput.NewPointerKeyboard(stb, l, nil)
	test.ExpectEquality(t, len(poll(t, pk)), 1)
	test.ExpectEquality(t, len(poll(t, pk)), 1)
}

func TestPointerKeyboardDraw(t *testing.T) {
	pk, _, stb := newPointerKeyboard(t, overCsharp)
	test.ExpectImplements(t, pk, (*userinput.Drawer)(nil))

	poll(t, pk)
	test.DemandSuccess(t, pk.Draw(stb))

	var held int
	for _, r := range stb.Rects {
		if r.Col == keyboard.ColHeldBlack {
			held++
		}
	}
	test.ExpectEquality(t, held, 1)
}

func TestPointerKeyboardResize(t *testing.T) {
	pk, _, stb := newPointerKeyboard(t, overC4, released,
		gui.Pointer{X: 600, Y: 1160, Primary: true}, gui.Pointer{X: 600, Y: 1160})
	test.ExpectImplements(t, pk, (*userinput.Resizer)(nil))

	evs := poll(t, pk)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Note, 60)
	poll(t, pk)

	// double the size of the window. the same note is twice as far along
	stb.Width, stb.Height = 1760, 1200
	test.DemandSuccess(t, pk.Resize(stb.Width, stb.Height))
	low, high := pk.Layout().Range()
	test.ExpectEquality(t, low, keyboard.DefaultLow)
	test.ExpectEquality(t, high, keyboard.DefaultHigh)

	note, ok := pk.Layout().KeyAt(300, 580)
	test.ExpectEquality(t, ok, false, note)

	evs = poll(t, pk)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Note, 60)

	// a window too small for a keyboard keeps the previous layout
	l := pk.Layout()
	test.ExpectFailure(t, pk.Resize(10, 10))
	test.ExpectEquality(t, pk.Layout() == l, true)
}
