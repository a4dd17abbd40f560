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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/keyboard"
	"github.com/jetsetilly/eartrainer/test"
)

func TestIsBlack(t *testing.T) {
	blacks := 0
	for n := 60; n < 72; n++ {
		if keyboard.IsBlack(n) {
			blacks++
		}
	}
	test.ExpectEquality(t, blacks, 5)
	test.ExpectEquality(t, keyboard.IsBlack(60), false)
	test.ExpectEquality(t, keyboard.IsBlack(61), true)
	test.ExpectEquality(t, keyboard.IsBlack(64), false)
	test.ExpectEquality(t, keyboard.IsBlack(66), true)
}

func TestLayoutErrors(t *testing.T) {
	_, err := keyboard.NewLayout(60, 50, 800, 600)
	test.ExpectEquality(t, curated.Is(err, keyboard.RangeError), true)

	_, err = keyboard.NewLayout(0, 128, 800, 600)
	test.ExpectEquality(t, curated.Is(err, keyboard.RangeError), true)

	_, err = keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, 10, 600)
	test.ExpectEquality(t, curated.Is(err, keyboard.SizeError), true)
}

func TestRangeWidening(t *testing.T) {
	l, err := keyboard.NewLayout(49, 70, 800, 600)
	test.DemandSuccess(t, err)
	low, high := l.Range()
	test.ExpectEquality(t, low, 48)
	test.ExpectEquality(t, high, 71)
}

func TestKeyAt(t *testing.T) {
	// 22 white keys of 40 pixels. keyboard occupies y 400 to 599
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, 880, 600)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(l.Keys()), 37)

	tests := []struct {
		x, y int
		note int
		ok   bool
	}{
		{x: 20, y: 550, note: 48, ok: true},
		{x: 40, y: 420, note: 49, ok: true},
		{x: 40, y: 550, note: 50, ok: true},
		{x: 120, y: 420, note: 53, ok: true},
		{x: 879, y: 599, note: 84, ok: true},
		{x: 5, y: 100, ok: false},
		{x: 5, y: 600, ok: false},
		{x: -1, y: 450, ok: false},
		{x: 880, y: 450, ok: false},
	}

	for _, tt := range tests {
		note, ok := l.KeyAt(tt.x, tt.y)
		test.ExpectEquality(t, ok, tt.ok, tt.x, tt.y)
		if tt.ok {
			test.ExpectEquality(t, note, tt.note, tt.x, tt.y)
		}
	}
}

func TestKeyAtIdempotence(t *testing.T) {
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, 800, 600)
	test.DemandSuccess(t, err)

	for x := 0; x < 800; x += 7 {
		for y := 380; y < 600; y += 11 {
			n1, ok1 := l.KeyAt(x, y)
			n2, ok2 := l.KeyAt(x, y)
			test.ExpectEquality(t, n1, n2)
			test.ExpectEquality(t, ok1, ok2)
		}
	}
}

func TestEveryKeyReachable(t *testing.T) {
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, 880, 600)
	test.DemandSuccess(t, err)

	// the centre of every black key, and the bottom centre of every white
	// key, resolves to that key
	for _, k := range l.Keys() {
		x := k.X + k.W/2
		y := k.Y + k.H - 1
		if k.Black {
			y = k.Y + k.H/2
		}
		n, ok := l.KeyAt(x, y)
		test.ExpectEquality(t, ok, true, k.Note)
		test.ExpectEquality(t, n, k.Note)
	}
}

func TestDraw(t *testing.T) {
	stb := &gui.Stub{Width: 880, Height: 600}
	l, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, stb.Width, stb.Height)
	test.DemandSuccess(t, err)

	held := func(n int) bool {
		return n == 49 || n == 60
	}
	test.DemandSuccess(t, l.Draw(stb, held))

	// background plus 22 white keys plus 15 black keys
	test.DemandEquality(t, len(stb.Rects), 38)
	test.ExpectEquality(t, stb.Rects[0].Col, keyboard.ColGap)

	var heldWhite, heldBlack int
	for _, r := range stb.Rects {
		switch r.Col {
		case keyboard.ColHeldWhite:
			heldWhite++
		case keyboard.ColHeldBlack:
			heldBlack++
		}
	}
	test.ExpectEquality(t, heldWhite, 1)
	test.ExpectEquality(t, heldBlack, 1)

	// nil held function draws nothing as held
	test.DemandSuccess(t, stb.Clear())
	test.DemandSuccess(t, l.Draw(stb, nil))
	for _, r := range stb.Rects {
		test.ExpectInequality(t, r.Col, keyboard.ColHeldWhite)
	}
}
