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

// Package pitchmatch is a game in which a note is played and the player must
// find it on the keyboard.
//
// When the correct note is pressed a new round begins after a short pause.
// Pressing space plays the note again. Pressing N gives up on the note and
// begins a new round.
//
// The score is written to the log.
package pitchmatch

import (
	"image/color"
	"time"

	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/random"
	"github.com/jetsetilly/eartrainer/scheduler"
)

// Name of the game as used on the command line.
const Name = "pitchmatch"

// Keycodes used by the game.
const (
	CodeReplay = events.CodeSpace
	CodeSkip   = 'n'
)

// Timings of the prompt.
const (
	PromptDuration = 800 * time.Millisecond
	RoundPause     = 600 * time.Millisecond
)

const promptVelocity = 100

// the range of target notes
const (
	DefaultLow  = 55
	DefaultHigh = 72
)

var (
	colCorrect = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	colWrong   = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colPrompt  = color.RGBA{R: 80, G: 120, B: 220, A: 255}
)

type feedback int

const (
	feedbackNone feedback = iota
	feedbackPrompt
	feedbackCorrect
	feedbackWrong
)

// PitchMatch implements the game.Game interface.
type PitchMatch struct {
	Low  int
	High int

	// clock used for the timing of prompts. time.Now() if nil
	Clock func() time.Time

	rnd *random.Random

	target   int
	answered bool
	fb       feedback

	rounds  int
	correct int
	wrong   int
}

// NewPitchMatch is the preferred method of initialisation for the PitchMatch
// type.
func NewPitchMatch(rnd *random.Random) *PitchMatch {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &PitchMatch{
		Low:  DefaultLow,
		High: DefaultHigh,
		rnd:  rnd,
	}
}

// Begin implements the game.Game interface.
func (pm *PitchMatch) Begin(ctx *dispatch.Context) error {
	dispatch.OnKey(ctx, func(ev events.KeyEvent) error {
		if !ev.Pressed || pm.answered {
			return nil
		}

		if ev.Note == pm.target {
			pm.correct++
			pm.answered = true
			pm.fb = feedbackCorrect
			logger.Logf(ctx.Permission(), Name, "correct. score %d/%d", pm.correct, pm.rounds)
			ctx.Spawn(scheduler.Delay(RoundPause, pm.Clock, func() error {
				pm.newRound(ctx)
				return nil
			}))
			return nil
		}

		pm.wrong++
		pm.fb = feedbackWrong
		if ev.Note < pm.target {
			logger.Logf(ctx.Permission(), Name, "wrong. too low")
		} else {
			logger.Logf(ctx.Permission(), Name, "wrong. too high")
		}
		return nil
	})

	dispatch.OnKeystroke(ctx, func(ev events.KeystrokeEvent) error {
		if !ev.Pressed {
			return nil
		}
		switch ev.Code {
		case CodeReplay:
			pm.prompt(ctx)
		case CodeSkip:
			// a new round is already waiting
			if pm.answered {
				return nil
			}
			logger.Logf(ctx.Permission(), Name, "skipped. the note was %d", pm.target)
			pm.newRound(ctx)
		}
		return nil
	})

	pm.newRound(ctx)

	return nil
}

func (pm *PitchMatch) newRound(ctx *dispatch.Context) {
	pm.target = pm.rnd.Between(pm.Low, pm.High)
	pm.answered = false
	pm.rounds++
	pm.prompt(ctx)
}

// prompt plays the target note
func (pm *PitchMatch) prompt(ctx *dispatch.Context) {
	target := pm.target
	pm.fb = feedbackPrompt
	ctx.Spawn(scheduler.Sequence(
		scheduler.After(0, func() error {
			ctx.Audio().NoteOn(target, promptVelocity)
			return nil
		}),
		scheduler.Delay(PromptDuration, pm.Clock, func() error {
			ctx.Audio().NoteOff(target)
			return nil
		}),
	))
}

// Update implements the game.Game interface.
func (pm *PitchMatch) Update(ctx *dispatch.Context) error {
	canvas := ctx.Canvas()
	if canvas == nil {
		return nil
	}

	var col color.RGBA
	switch pm.fb {
	case feedbackPrompt:
		col = colPrompt
	case feedbackCorrect:
		col = colCorrect
	case feedbackWrong:
		col = colWrong
	default:
		return nil
	}

	w, h := canvas.Size()
	return canvas.FillRect(0, 0, w, h/8, col)
}

// Target returns the note the player is trying to find.
func (pm *PitchMatch) Target() int {
	return pm.target
}

// Score returns the number of rounds, correct answers and wrong answers.
func (pm *PitchMatch) Score() (int, int, int) {
	return pm.rounds, pm.correct, pm.wrong
}
