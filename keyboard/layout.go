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

package keyboard

import (
	"image/color"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/gui"
)

// Sentinal errors.
const (
	RangeError = "keyboard: invalid note range (%d to %d)"
	SizeError  = "keyboard: invalid size (%dx%d)"
)

// Default note range. C3 to C6.
const (
	DefaultLow  = 48
	DefaultHigh = 84
)

// the proportion of the window height that the keyboard occupies
const heightFraction = 3

// black keys are this fraction of a white key's width and height
const (
	blackWidthNum    = 3
	blackWidthDen    = 5
	blackHeightNum   = 5
	blackHeightDen   = 8
	minimumKeyHeight = 2
)

// Colours used when drawing.
var (
	ColWhite     = color.RGBA{R: 240, G: 240, B: 235, A: 255}
	ColBlack     = color.RGBA{R: 20, G: 20, B: 25, A: 255}
	ColGap       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	ColHeldWhite = color.RGBA{R: 120, G: 180, B: 250, A: 255}
	ColHeldBlack = color.RGBA{R: 40, G: 100, B: 200, A: 255}
)

// IsBlack returns true if the MIDI note number is a black key.
func IsBlack(note int) bool {
	switch ((note % 12) + 12) % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// Key is the screen region of a single key.
type Key struct {
	Note  int
	Black bool
	X, Y  int
	W, H  int
}

func (k Key) contains(x, y int) bool {
	return x >= k.X && x < k.X+k.W && y >= k.Y && y < k.Y+k.H
}

// Layout of keys for a note range and window size.
type Layout struct {
	low  int
	high int

	// top of the keyboard area
	top    int
	width  int
	height int

	white []Key
	black []Key
}

// NewLayout is the preferred method of initialisation for the Layout type. The
// range of notes will be widened if necessary so that the keyboard starts and
// ends on a white key.
func NewLayout(low int, high int, width int, height int) (*Layout, error) {
	if low < 0 || high > 127 || low > high {
		return nil, curated.Errorf(RangeError, low, high)
	}
	if IsBlack(low) {
		low--
	}
	if IsBlack(high) {
		high++
	}

	var whiteCount int
	for n := low; n <= high; n++ {
		if !IsBlack(n) {
			whiteCount++
		}
	}

	kbHeight := height / heightFraction
	if width < whiteCount || kbHeight < minimumKeyHeight {
		return nil, curated.Errorf(SizeError, width, height)
	}

	l := &Layout{
		low:    low,
		high:   high,
		top:    height - kbHeight,
		width:  width,
		height: height,
	}

	// white keys are spread over the whole width. rounding errors are
	// absorbed by calculating each edge from the key index
	var idx int
	for n := low; n <= high; n++ {
		if IsBlack(n) {
			continue
		}
		x := idx * width / whiteCount
		w := (idx+1)*width/whiteCount - x
		l.white = append(l.white, Key{Note: n, X: x, Y: l.top, W: w, H: kbHeight})
		idx++
	}

	// black keys are centred on the boundary between the white key below them
	// and the white key above
	bw := width / whiteCount * blackWidthNum / blackWidthDen
	if bw < 1 {
		bw = 1
	}
	bh := kbHeight * blackHeightNum / blackHeightDen
	idx = 0
	for n := low; n <= high; n++ {
		if !IsBlack(n) {
			idx++
			continue
		}
		edge := idx * width / whiteCount
		l.black = append(l.black, Key{Note: n, Black: true, X: edge - bw/2, Y: l.top, W: bw, H: bh})
	}

	return l, nil
}

// Range returns the lowest and highest notes of the keyboard.
func (l *Layout) Range() (int, int) {
	return l.low, l.high
}

// Keys returns all keys in the layout. White keys first and then black keys,
// which is the order in which they are drawn.
func (l *Layout) Keys() []Key {
	k := make([]Key, 0, len(l.white)+len(l.black))
	k = append(k, l.white...)
	return append(k, l.black...)
}

// KeyAt returns the note of the key at the screen position. The boolean
// result is false if there is no key at that position.
func (l *Layout) KeyAt(x int, y int) (int, bool) {
	if y < l.top || y >= l.height || x < 0 || x >= l.width {
		return 0, false
	}
	for _, k := range l.black {
		if k.contains(x, y) {
			return k.Note, true
		}
	}
	for _, k := range l.white {
		if k.contains(x, y) {
			return k.Note, true
		}
	}
	return 0, false
}

// Draw the keyboard to the canvas. The held function says whether a note
// should be drawn as being held down. It can be nil.
func (l *Layout) Draw(canvas gui.Canvas, held func(note int) bool) error {
	isHeld := func(n int) bool {
		return held != nil && held(n)
	}

	err := canvas.FillRect(0, l.top, l.width, l.height-l.top, ColGap)
	if err != nil {
		return err
	}

	for _, k := range l.white {
		col := ColWhite
		if isHeld(k.Note) {
			col = ColHeldWhite
		}

		// one pixel gap on the right hand side of each key
		w := k.W - 1
		if w < 1 {
			w = 1
		}
		if err := canvas.FillRect(k.X, k.Y, w, k.H, col); err != nil {
			return err
		}
	}

	for _, k := range l.black {
		col := ColBlack
		if isHeld(k.Note) {
			col = ColHeldBlack
		}
		if err := canvas.FillRect(k.X, k.Y, k.W, k.H, col); err != nil {
			return err
		}
	}

	return nil
}
