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

package dispatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/scheduler"
	"github.com/jetsetilly/eartrainer/test"
)

// record returns a listener that appends the label to the calls slice
func record(calls *[]string, label string) dispatch.Listener {
	return func(ev events.Event) error {
		*calls = append(*calls, fmt.Sprintf("%s %v", label, ev))
		return nil
	}
}

func TestFanOutOrder(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	var calls []string
	ctx.Register(events.KindKey, record(&calls, "a"))
	ctx.Register(events.KindKey, record(&calls, "b"))
	ctx.Register(events.KindKeystroke, record(&calls, "x"))
	ctx.Register(events.KindKey, record(&calls, "c"))

	test.ExpectEquality(t, ctx.Listeners(events.KindKey), 3)
	test.ExpectEquality(t, ctx.Listeners(events.KindKeystroke), 1)

	ev := events.KeyEvent{Note: 60, Velocity: 127, Pressed: true}
	test.ExpectSuccess(t, ctx.Fire(ev))
	test.DemandEquality(t, len(calls), 3)
	test.ExpectEquality(t, calls[0], "a note 60 on (127)")
	test.ExpectEquality(t, calls[1], "b note 60 on (127)")
	test.ExpectEquality(t, calls[2], "c note 60 on (127)")

	calls = calls[:0]
	test.ExpectSuccess(t, ctx.Fire(events.KeystrokeEvent{Code: events.CodeSpace, Pressed: true}))
	test.DemandEquality(t, len(calls), 1)
	test.ExpectEquality(t, calls[0][:2], "x ")
}

func TestNoListeners(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)
	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 60}))

	// nil listeners are not registered
	ctx.Register(events.KindKey, nil)
	test.ExpectEquality(t, ctx.Listeners(events.KindKey), 0)
}

func TestDuplicateRegistration(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	var count int
	l := func(_ events.Event) error {
		count++
		return nil
	}
	ctx.Register(events.KindKey, l)
	ctx.Register(events.KindKey, l)
	ctx.Register(events.KindKey, l)

	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 64}))
	test.ExpectEquality(t, count, 3)
}

func TestRegistrationDuringFire(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	var late int
	var registering int
	ctx.Register(events.KindKey, func(_ events.Event) error {
		registering++
		ctx.Register(events.KindKey, func(_ events.Event) error {
			late++
			return nil
		})
		return nil
	})

	// the listener added during the fan-out is not called
	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 60}))
	test.ExpectEquality(t, registering, 1)
	test.ExpectEquality(t, late, 0)
	test.ExpectEquality(t, ctx.Listeners(events.KindKey), 2)

	// but it is called on the next fire. the first listener also adds another
	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 60}))
	test.ExpectEquality(t, registering, 2)
	test.ExpectEquality(t, late, 1)
	test.ExpectEquality(t, ctx.Listeners(events.KindKey), 3)
}

func TestListenerError(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	var calls []string
	failure := errors.New("bad listener")
	ctx.Register(events.KindKey, record(&calls, "a"))
	ctx.Register(events.KindKey, func(_ events.Event) error {
		return failure
	})
	ctx.Register(events.KindKey, record(&calls, "c"))

	err := ctx.Fire(events.KeyEvent{Note: 60, Pressed: true, Velocity: 1})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, dispatch.ListenerError), true)
	test.ExpectEquality(t, errors.Is(err, failure), true)

	// fan-out stopped at the failing listener
	test.ExpectEquality(t, len(calls), 1)
}

func TestIsolation(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)
	ctx.SetIsolation(true)

	var calls []string
	ctx.Register(events.KindKey, record(&calls, "a"))
	ctx.Register(events.KindKey, func(_ events.Event) error {
		return errors.New("bad listener")
	})
	ctx.Register(events.KindKey, record(&calls, "c"))

	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 60}))
	test.ExpectEquality(t, len(calls), 2)
}

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

func TestIsolationLogging(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)
	ctx.SetIsolation(true)
	ctx.Register(events.KindKey, func(_ events.Event) error {
		return errors.New("bad listener")
	})

	w := &test.Writer{}

	// the default permission allows logging
	logger.Clear()
	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 60}))
	logger.Write(w)
	test.ExpectInequality(t, w.String(), "")

	ctx.SetPermission(quiet{})
	test.ExpectEquality(t, ctx.Permission().AllowLogging(), false)
	logger.Clear()
	w.Clear()
	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 61}))
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	ctx.SetPermission(nil)
	test.ExpectEquality(t, ctx.Permission().AllowLogging(), true)
	logger.Clear()
}

func TestTypedHelpers(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	var keys []events.KeyEvent
	var strokes []events.KeystrokeEvent
	dispatch.OnKey(ctx, func(ev events.KeyEvent) error {
		keys = append(keys, ev)
		return nil
	})
	dispatch.OnKeystroke(ctx, func(ev events.KeystrokeEvent) error {
		strokes = append(strokes, ev)
		return nil
	})

	test.ExpectSuccess(t, ctx.Fire(events.KeyEvent{Note: 62, Velocity: 90, Pressed: true}))
	test.ExpectSuccess(t, ctx.Fire(events.KeystrokeEvent{Code: events.CodeReturn, Pressed: false}))

	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], events.KeyEvent{Note: 62, Velocity: 90, Pressed: true})
	test.DemandEquality(t, len(strokes), 1)
	test.ExpectEquality(t, strokes[0], events.KeystrokeEvent{Code: events.CodeReturn})
}

type audio struct {
	on  []int
	off []int
}

func (a *audio) NoteOn(note int, _ int) {
	a.on = append(a.on, note)
}

func (a *audio) NoteOff(note int) {
	a.off = append(a.off, note)
}

func TestCollaborators(t *testing.T) {
	// a context with no audio still returns something usable
	ctx := dispatch.NewContext(nil, nil)
	test.DemandEquality(t, ctx.Audio() != nil, true)
	ctx.Audio().NoteOn(60, 100)
	ctx.Audio().NoteOff(60)

	stb := &gui.Stub{Width: 320, Height: 200}
	snd := &audio{}
	ctx = dispatch.NewContext(stb, snd)
	w, h := ctx.Canvas().Size()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 200)

	ctx.Audio().NoteOn(72, 100)
	test.ExpectEquality(t, len(snd.on), 1)

	var ran bool
	ctx.Spawn(scheduler.After(0, func() error {
		ran = true
		return nil
	}))
	test.ExpectEquality(t, ctx.Scheduler().Len(), 1)
	test.ExpectSuccess(t, ctx.Scheduler().Yield())
	test.ExpectEquality(t, ran, true)
}

func TestOwner(t *testing.T) {
	ctx := dispatch.NewContext(nil, nil)

	done := make(chan any)
	go func() {
		defer func() {
			done <- recover()
		}()
		_ = ctx.Fire(events.KeyEvent{Note: 60})
	}()

	test.ExpectInequality(t, <-done, nil)
}
