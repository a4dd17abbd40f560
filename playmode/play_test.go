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

package playmode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/environment"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/playmode"
	"github.com/jetsetilly/eartrainer/scheduler"
	"github.com/jetsetilly/eartrainer/test"
)

// adapter returns one slice of key events per frame
type adapter struct {
	frames [][]events.KeyEvent
	drawn  int
	sizes  [][2]int
}

func (a *adapter) Poll() ([]events.KeyEvent, error) {
	if len(a.frames) == 0 {
		return nil, nil
	}
	ev := a.frames[0]
	a.frames = a.frames[1:]
	return ev, nil
}

func (a *adapter) Draw(_ gui.Canvas) error {
	a.drawn++
	return nil
}

func (a *adapter) Resize(width int, height int) error {
	a.sizes = append(a.sizes, [2]int{width, height})
	if width < 100 {
		return errors.New("too small")
	}
	return nil
}

// recorder game. records everything that happens to it in the order it
// happens
type recorder struct {
	log     []string
	keyErr   error
	beginErr error
}

func (r *recorder) Begin(ctx *dispatch.Context) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	dispatch.OnKey(ctx, func(ev events.KeyEvent) error {
		r.log = append(r.log, ev.String())
		return r.keyErr
	})
	dispatch.OnKeystroke(ctx, func(ev events.KeystrokeEvent) error {
		r.log = append(r.log, ev.String())
		return nil
	})
	ctx.Spawn(scheduler.TaskFunc(func() (bool, error) {
		r.log = append(r.log, "task")
		return false, nil
	}))
	return nil
}

func (r *recorder) Update(_ *dispatch.Context) error {
	r.log = append(r.log, "update")
	return nil
}

type output struct {
	serviced int
}

func (o *output) Service() error {
	o.serviced++
	return nil
}

func TestFrameOrder(t *testing.T) {
	stb := &gui.Stub{
		Width:  880,
		Height: 600,
		Frames: [][]gui.Event{
			{gui.EventKeyboard{Code: 'a', Down: true}},
			{},
			{gui.EventQuit{}},
		},
	}
	adp := &adapter{
		frames: [][]events.KeyEvent{
			{{Note: 60, Velocity: 100, Pressed: true}},
			{{Note: 60, Pressed: false}},
		},
	}
	rec := &recorder{}
	out := &output{}

	err := playmode.Play(environment.Normalise(), stb, adp, rec, nil, out)
	test.DemandSuccess(t, err)

	expected := []string{
		"key 97 down", "update", "note 60 on (100)", "task",
		"update", "note 60 off", "task",
	}
	test.DemandEquality(t, len(rec.log), len(expected))
	for i := range expected {
		test.ExpectEquality(t, rec.log[i], expected[i])
	}

	test.ExpectEquality(t, stb.Presented, 2)
	test.ExpectEquality(t, out.serviced, 2)
	test.ExpectEquality(t, adp.drawn, 2)
}

func TestEscapeQuits(t *testing.T) {
	stb := &gui.Stub{
		Width:  880,
		Height: 600,
		Frames: [][]gui.Event{
			{gui.EventKeyboard{Code: events.CodeEscape, Down: true}, gui.EventKeyboard{Code: 'b', Down: true}},
		},
	}
	rec := &recorder{}

	err := playmode.Play(environment.Normalise(), stb, &adapter{}, rec, nil, nil)
	test.DemandSuccess(t, err)

	// the escape keystroke is seen by the game but nothing after it
	test.DemandEquality(t, len(rec.log), 1)
	test.ExpectEquality(t, rec.log[0], fmt.Sprintf("key %d down", events.CodeEscape))
	test.ExpectEquality(t, stb.Presented, 0)
}

func TestListenerErrorEndsPlay(t *testing.T) {
	stb := &gui.Stub{
		Width:  880,
		Height: 600,
		Frames: [][]gui.Event{
			{}, {}, {gui.EventQuit{}},
		},
	}
	adp := &adapter{
		frames: [][]events.KeyEvent{
			{{Note: 60, Velocity: 100, Pressed: true}},
		},
	}
	rec := &recorder{keyErr: errors.New("wrong note")}

	err := playmode.Play(environment.Normalise(), stb, adp, rec, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, stb.Presented, 0)
}

func TestIsolatedListenerError(t *testing.T) {
	stb := &gui.Stub{
		Width:  880,
		Height: 600,
		Frames: [][]gui.Event{
			{}, {}, {gui.EventQuit{}},
		},
	}
	adp := &adapter{
		frames: [][]events.KeyEvent{
			{{Note: 60, Velocity: 100, Pressed: true}},
		},
	}
	rec := &recorder{keyErr: errors.New("wrong note")}

	env := environment.Normalise()
	env.Isolate = true
	env.Quiet = true

	err := playmode.Play(env, stb, adp, rec, nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, stb.Presented, 2)
}

func TestBeginError(t *testing.T) {
	stb := &gui.Stub{Width: 880, Height: 600}
	rec := &recorder{beginErr: errors.New("no begin")}

	err := playmode.Play(environment.Normalise(), stb, &adapter{}, rec, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(rec.log), 0)
	test.ExpectEquality(t, stb.Presented, 0)
}

func TestResize(t *testing.T) {
	stb := &gui.Stub{
		Width:  880,
		Height: 600,
		Frames: [][]gui.Event{
			{gui.EventResize{Width: 1024, Height: 768}},
			{gui.EventResize{Width: 50, Height: 50}},
			{gui.EventQuit{}},
		},
	}
	adp := &adapter{}

	// a failed resize does not end the run
	err := playmode.Play(environment.Normalise(), stb, adp, &recorder{}, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(adp.sizes), 2)
	test.ExpectEquality(t, adp.sizes[0], [2]int{1024, 768})
	test.ExpectEquality(t, adp.sizes[1], [2]int{50, 50})
	test.ExpectEquality(t, stb.Presented, 2)
}
