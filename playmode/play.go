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
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/dispatch"
	"github.com/jetsetilly/eartrainer/environment"
	"github.com/jetsetilly/eartrainer/game"
	"github.com/jetsetilly/eartrainer/gui"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/performance"
	"github.com/jetsetilly/eartrainer/performance/limiter"
	"github.com/jetsetilly/eartrainer/userinput"
)

// PlayError is the pattern used to wrap every error returned by Play().
const PlayError = "playmode: %v"

const logTag = "playmode"

// Output is the audio output. It is serviced once per frame.
type Output interface {
	Service() error
}

type playmode struct {
	env     *environment.Environment
	surface gui.Surface
	adapter userinput.Adapter
	ctrl    *game.Controller
	ctx     *dispatch.Context
	output  Output
	lmtr    *limiter.FpsLimiter

	// interrupt signal from the OS. treated the same as a quit event
	intChan chan os.Signal

	frames int
}

// Play runs the game until the user quits or there is an error. The sink is
// the audio that the game can use to play notes and can be nil. The output is
// serviced every frame and can also be nil.
func Play(env *environment.Environment, surface gui.Surface, adapter userinput.Adapter, g game.Game, sink dispatch.Audio, output Output) error {
	pl := &playmode{
		env:     env,
		surface: surface,
		adapter: adapter,
		ctrl:    game.NewController(g),
		ctx:     dispatch.NewContext(surface, sink),
		output:  output,
		intChan: make(chan os.Signal, 1),
	}

	pl.ctx.SetPermission(env)
	pl.ctx.SetIsolation(env.Isolate)
	if env.Isolate {
		logger.Log(env, logTag, "listener errors will not end the game")
	}

	if env.FPSCap > 0 {
		var err error
		pl.lmtr, err = limiter.NewFPSLimiter(env.FPSCap)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
	}

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	if err := pl.ctrl.Begin(pl.ctx); err != nil {
		return curated.Errorf(PlayError, err)
	}

	start := time.Now()
	err := pl.run()

	fps, _ := performance.CalcFPS(pl.frames, time.Since(start).Seconds(), env.FPSCap)
	logger.Logf(env, logTag, "%d frames (%.1f fps)", pl.frames, fps)

	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf(PlayError, err)
	}

	return nil
}

func (pl *playmode) run() error {
	for {
		if err := pl.frame(); err != nil {
			return err
		}
		pl.frames++

		if pl.lmtr != nil {
			pl.lmtr.Wait()
		}
	}
}

// a single iteration of the main loop
func (pl *playmode) frame() error {
	if err := pl.windowEvents(); err != nil {
		return err
	}

	if err := pl.surface.Clear(); err != nil {
		return err
	}

	if err := pl.ctrl.Update(pl.ctx); err != nil {
		return err
	}

	evs, err := pl.adapter.Poll()
	if err != nil {
		return err
	}
	for _, ev := range evs {
		if err := pl.ctx.Fire(ev); err != nil {
			return err
		}
	}

	if d, ok := pl.adapter.(userinput.Drawer); ok {
		if err := d.Draw(pl.surface); err != nil {
			return err
		}
	}

	if pl.output != nil {
		if err := pl.output.Service(); err != nil {
			return err
		}
	}

	if err := pl.surface.Present(); err != nil {
		return err
	}

	return pl.ctx.Scheduler().Yield()
}
