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

package dispatch

import (
	"github.com/jetsetilly/eartrainer/assert"
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/scheduler"
)

// ListenerError is the pattern used to wrap errors returned by a listener.
const ListenerError = "listener (%v): %v"

const logTag = "dispatch"

// Listener is called with every event of the kind it was registered for.
type Listener func(ev events.Event) error

// Audio is the sound output that a game can use to play prompts.
type Audio interface {
	NoteOn(note int, velocity int)
	NoteOff(note int)
}

type silence struct{}

func (silence) NoteOn(_ int, _ int) {}
func (silence) NoteOff(_ int)       {}

// Context is the event registry and the collection of services that a game
// has access to.
type Context struct {
	owner assert.Owner

	listeners map[events.Kind][]Listener

	// log and continue when a listener fails
	isolate bool

	// permission used for logging by the context and by games
	perm logger.Permission

	sched  *scheduler.Scheduler
	canvas gui.Canvas
	audio  Audio
}

// NewContext is the preferred method of initialisation for the Context type.
// The audio argument can be nil, in which case games will play nothing.
func NewContext(canvas gui.Canvas, audio Audio) *Context {
	if audio == nil {
		audio = silence{}
	}
	return &Context{
		owner:     assert.NewOwner(),
		listeners: make(map[events.Kind][]Listener),
		sched:     &scheduler.Scheduler{},
		canvas:    canvas,
		audio:     audio,
		perm:      logger.Allow,
	}
}

// SetIsolation changes how listener errors are handled. When isolated, a
// listener error is logged and the fan-out continues. When not isolated (the
// default) the first error stops the fan-out and is returned by Fire().
func (ctx *Context) SetIsolation(isolate bool) {
	ctx.isolate = isolate
}

// SetPermission changes the logging permission. A nil value restores the
// default, which always allows logging.
func (ctx *Context) SetPermission(perm logger.Permission) {
	if perm == nil {
		perm = logger.Allow
	}
	ctx.perm = perm
}

// Permission returns the logging permission that games should use.
func (ctx *Context) Permission() logger.Permission {
	return ctx.perm
}

// Register a listener for the kind of event. A nil listener is ignored.
func (ctx *Context) Register(kind events.Kind, l Listener) {
	ctx.owner.Check("dispatch.Register")
	if l == nil {
		return
	}
	ctx.listeners[kind] = append(ctx.listeners[kind], l)
}

// Listeners returns the number of listeners registered for the kind of event.
func (ctx *Context) Listeners(kind events.Kind) int {
	return len(ctx.listeners[kind])
}

// Fire calls every listener registered for the event's kind, in the order in
// which they were registered.
func (ctx *Context) Fire(ev events.Event) error {
	ctx.owner.Check("dispatch.Fire")

	// the range expression is evaluated once. listeners appended to the
	// registry by a listener are not part of this iteration
	for _, l := range ctx.listeners[ev.Kind()] {
		if err := l(ev); err != nil {
			err = curated.Errorf(ListenerError, ev.Kind(), err)
			if !ctx.isolate {
				return err
			}
			logger.Log(ctx.perm, logTag, err)
		}
	}
	return nil
}

// Spawn adds a cooperative task to the scheduler. The task is first stepped
// at the end of the current frame.
func (ctx *Context) Spawn(t scheduler.Task) {
	ctx.sched.Spawn(t)
}

// Scheduler returns the scheduler used by Spawn().
func (ctx *Context) Scheduler() *scheduler.Scheduler {
	return ctx.sched
}

// Canvas returns the drawing surface for the game.
func (ctx *Context) Canvas() gui.Canvas {
	return ctx.canvas
}

// Audio returns the sound output for the game. Never nil.
func (ctx *Context) Audio() Audio {
	return ctx.audio
}

// OnKey registers a function that is called with every KeyEvent.
func OnKey(ctx *Context, f func(events.KeyEvent) error) {
	ctx.Register(events.KindKey, func(ev events.Event) error {
		return f(ev.(events.KeyEvent))
	})
}

// OnKeystroke registers a function that is called with every KeystrokeEvent.
func OnKeystroke(ctx *Context, f func(events.KeystrokeEvent) error) {
	ctx.Register(events.KindKeystroke, func(ev events.Event) error {
		return f(ev.(events.KeystrokeEvent))
	})
}
