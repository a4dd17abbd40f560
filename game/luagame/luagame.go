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

package luagame

import (
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/Shopify/go-lua"
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/random"
	"github.com/jetsetilly/eartrainer/scheduler"
)

// Sentinal errors.
const (
	LoadError    = "lua (%s): load: %v"
	ScriptError  = "lua (%s): %v"
	NoBeginError = "lua (%s): script does not define begin()"
)

// Extension is the filename extension of game scripts.
const Extension = ".lua"

// the registry key of the table of stored callbacks
const callbacksKey = "eartrainer.callbacks"

// LuaGame implements the game.Game interface.
type LuaGame struct {
	// clock used by game.delay(). time.Now() if nil
	Clock func() time.Time

	name  string
	state *lua.State

	// nil until Begin() is called
	ctx *dispatch.Context

	rnd *random.Random

	// the key of the most recently stored callback
	lastCallback int
}

// Load a game from a script file.
func Load(filename string) (*LuaGame, error) {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	g := newLuaGame(name)

	if err := lua.LoadFile(g.state, filename, ""); err != nil {
		return nil, curated.Errorf(LoadError, name, err)
	}
	if err := g.run(); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadString creates a game from a script.
func LoadString(name string, script string) (*LuaGame, error) {
	g := newLuaGame(name)

	if err := lua.LoadString(g.state, script); err != nil {
		return nil, curated.Errorf(LoadError, name, err)
	}
	if err := g.run(); err != nil {
		return nil, err
	}

	return g, nil
}

func newLuaGame(name string) *LuaGame {
	g := &LuaGame{
		name:  name,
		state: lua.NewState(),
		rnd:   random.NewRandom(),
	}

	lua.OpenLibraries(g.state)

	g.state.NewTable()
	g.state.SetField(lua.RegistryIndex, callbacksKey)

	g.state.NewTable()
	lua.SetFunctions(g.state, []lua.RegistryFunction{
		{Name: "on_key", Function: g.onKey},
		{Name: "on_keystroke", Function: g.onKeystroke},
		{Name: "after", Function: g.after},
		{Name: "every", Function: g.every},
		{Name: "delay", Function: g.delay},
		{Name: "note_on", Function: g.noteOn},
		{Name: "note_off", Function: g.noteOff},
		{Name: "fill_rect", Function: g.fillRect},
		{Name: "size", Function: g.size},
		{Name: "random", Function: g.random},
		{Name: "log", Function: g.log},
	}, 0)
	g.state.SetGlobal("game")

	return g
}

// run the loaded chunk. this defines the script's functions
func (g *LuaGame) run() error {
	if err := g.state.ProtectedCall(0, 0, 0); err != nil {
		return curated.Errorf(ScriptError, g.name, err)
	}

	g.state.Global("begin")
	defined := g.state.IsFunction(-1)
	g.state.Pop(1)
	if !defined {
		return curated.Errorf(NoBeginError, g.name)
	}

	return nil
}

// Name returns the name of the script.
func (g *LuaGame) Name() string {
	return g.name
}

// Begin implements the game.Game interface.
func (g *LuaGame) Begin(ctx *dispatch.Context) error {
	g.ctx = ctx
	return g.callGlobal("begin")
}

// Update implements the game.Game interface.
func (g *LuaGame) Update(_ *dispatch.Context) error {
	return g.callGlobal("update")
}

// call a global function if it is defined
func (g *LuaGame) callGlobal(name string) error {
	g.state.Global(name)
	if !g.state.IsFunction(-1) {
		g.state.Pop(1)
		return nil
	}
	if err := g.state.ProtectedCall(0, 0, 0); err != nil {
		g.state.Pop(1)
		return curated.Errorf(ScriptError, g.name, err)
	}
	return nil
}

// store the function at the stack index and return its key
func (g *LuaGame) store(l *lua.State, index int) int {
	lua.CheckType(l, index, lua.TypeFunction)
	g.lastCallback++
	l.Field(lua.RegistryIndex, callbacksKey)
	l.PushValue(index)
	l.RawSetInt(-2, g.lastCallback)
	l.Pop(1)
	return g.lastCallback
}

// call a stored function with integer and boolean arguments. the function
// returns true if the Lua function returned a true value
func (g *LuaGame) call(key int, args ...any) (bool, error) {
	l := g.state
	l.Field(lua.RegistryIndex, callbacksKey)
	l.RawGetInt(-1, key)
	l.Remove(-2)

	for _, a := range args {
		switch a := a.(type) {
		case int:
			l.PushInteger(a)
		case bool:
			l.PushBoolean(a)
		}
	}

	if err := l.ProtectedCall(len(args), 1, 0); err != nil {
		l.Pop(1)
		return false, curated.Errorf(ScriptError, g.name, err)
	}

	done := l.ToBoolean(-1)
	l.Pop(1)
	return done, nil
}

// the context is only available once the game has begun
func (g *LuaGame) context(l *lua.State) *dispatch.Context {
	if g.ctx == nil {
		lua.Errorf(l, "game has not begun")
	}
	return g.ctx
}

func (g *LuaGame) onKey(l *lua.State) int {
	ctx := g.context(l)
	key := g.store(l, 1)
	dispatch.OnKey(ctx, func(ev events.KeyEvent) error {
		_, err := g.call(key, ev.Note, ev.Velocity, ev.Pressed)
		return err
	})
	return 0
}

func (g *LuaGame) onKeystroke(l *lua.State) int {
	ctx := g.context(l)
	key := g.store(l, 1)
	dispatch.OnKeystroke(ctx, func(ev events.KeystrokeEvent) error {
		_, err := g.call(key, ev.Code, ev.Pressed)
		return err
	})
	return 0
}

func (g *LuaGame) after(l *lua.State) int {
	ctx := g.context(l)
	frames := lua.CheckInteger(l, 1)
	key := g.store(l, 2)
	ctx.Spawn(scheduler.After(frames, func() error {
		_, err := g.call(key)
		return err
	}))
	return 0
}

func (g *LuaGame) every(l *lua.State) int {
	ctx := g.context(l)
	frames := lua.CheckInteger(l, 1)
	key := g.store(l, 2)
	ctx.Spawn(scheduler.Every(frames, func() (bool, error) {
		return g.call(key)
	}))
	return 0
}

// delay is measured in seconds of wall-clock time and not in frames
func (g *LuaGame) delay(l *lua.State) int {
	ctx := g.context(l)
	seconds := lua.CheckNumber(l, 1)
	key := g.store(l, 2)
	d := time.Duration(seconds * float64(time.Second))
	ctx.Spawn(scheduler.Delay(d, g.Clock, func() error {
		_, err := g.call(key)
		return err
	}))
	return 0
}

func (g *LuaGame) noteOn(l *lua.State) int {
	ctx := g.context(l)
	note := lua.CheckInteger(l, 1)
	vel := lua.OptInteger(l, 2, events.MaxVelocity)
	ctx.Audio().NoteOn(note, vel)
	return 0
}

func (g *LuaGame) noteOff(l *lua.State) int {
	ctx := g.context(l)
	ctx.Audio().NoteOff(lua.CheckInteger(l, 1))
	return 0
}

func (g *LuaGame) fillRect(l *lua.State) int {
	ctx := g.context(l)
	x := lua.CheckInteger(l, 1)
	y := lua.CheckInteger(l, 2)
	w := lua.CheckInteger(l, 3)
	h := lua.CheckInteger(l, 4)
	col := color.RGBA{
		R: uint8(lua.CheckInteger(l, 5)),
		G: uint8(lua.CheckInteger(l, 6)),
		B: uint8(lua.CheckInteger(l, 7)),
		A: 255,
	}
	if canvas := ctx.Canvas(); canvas != nil {
		if err := canvas.FillRect(x, y, w, h, col); err != nil {
			lua.Errorf(l, "%s", err.Error())
		}
	}
	return 0
}

func (g *LuaGame) size(l *lua.State) int {
	ctx := g.context(l)
	var w, h int
	if canvas := ctx.Canvas(); canvas != nil {
		w, h = canvas.Size()
	}
	l.PushInteger(w)
	l.PushInteger(h)
	return 2
}

func (g *LuaGame) random(l *lua.State) int {
	low := lua.CheckInteger(l, 1)
	high := lua.CheckInteger(l, 2)
	l.PushInteger(g.rnd.Between(low, high))
	return 1
}

func (g *LuaGame) log(l *lua.State) int {
	perm := logger.Allow
	if g.ctx != nil {
		perm = g.ctx.Permission()
	}
	logger.Log(perm, g.name, lua.CheckString(l, 1))
	return 0
}
