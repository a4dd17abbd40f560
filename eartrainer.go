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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/environment"
	"github.com/jetsetilly/eartrainer/game/loader"
	"github.com/jetsetilly/eartrainer/gui/sdlaudio"
	"github.com/jetsetilly/eartrainer/gui/sdlplay"
	"github.com/jetsetilly/eartrainer/keyboard"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/mididevice"
	"github.com/jetsetilly/eartrainer/modalflag"
	"github.com/jetsetilly/eartrainer/performance"
	"github.com/jetsetilly/eartrainer/playmode"
	"github.com/jetsetilly/eartrainer/statsview"
	"github.com/jetsetilly/eartrainer/synth"
	"github.com/jetsetilly/eartrainer/userinput"
	"github.com/jetsetilly/eartrainer/version"
	"github.com/jetsetilly/eartrainer/wavwriter"
)

// exit values
const (
	exitArguments = 10
	exitRuntime   = 20
)

// number of log entries written to stderr when the program ends with an error
const tailLength = 10

// errors with this pattern are caused by the command line and not by the run
// of the program
const argumentError = "%s mode: %v"

func init() {
	// SDL must be driven from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit value of the program.
func launch(args []string) int {
	env, err := environment.NewEnvironment()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return exitArguments
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "LIST", "DEVICES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, env)

	case "LIST":
		err = list(md, env)

	case "DEVICES":
		err = devices(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if curated.Has(err, argumentError) {
			return exitArguments
		}
		logger.Tail(os.Stderr, tailLength)
		return exitRuntime
	}

	return 0
}

// the flags for play mode default to the values in the environment
func play(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()
	md.AdditionalHelp("The game is the name of a built-in game or of a Lua script in the games directory.")

	log := md.AddBool("log", env.Log, "echo debugging log to stdout")
	isolate := md.AddBool("isolate", env.Isolate, "log listener errors and continue")
	fpsCap := md.AddInt("fpscap", env.FPSCap, "frames per second limit. zero is no limit")
	wav := md.AddString("wav", env.Wav, "record audio to wav file")
	sample := md.AddString("sample", env.Sample, "instrument sample (wav or mp3)")
	games := md.AddString("games", env.Games, "directory of game scripts")
	width := md.AddInt("width", env.Width, "window width")
	height := md.AddInt("height", env.Height, "window height")
	midiDevice := md.AddString("mididevice", env.MidiDevice, "name pattern of MIDI input to use")
	noMidi := md.AddBool("nomidi", env.NoMidi, "use the on-screen keyboard even if a MIDI input is present")
	stats := md.AddBool("statsview", env.Statsview, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, md, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	env.Log = *log
	env.Isolate = *isolate
	env.FPSCap = *fpsCap
	env.Wav = *wav
	env.Sample = *sample
	env.Games = *games
	env.Width = *width
	env.Height = *height
	env.MidiDevice = *midiDevice
	env.NoMidi = *noMidi
	env.Statsview = *stats

	if err := env.Validate(); err != nil {
		return curated.Errorf(argumentError, md, err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argumentError, md, err)
	}

	var name string
	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(argumentError, md, "game name required")
	case 1:
		name = md.GetArg(0)
	default:
		return curated.Errorf(argumentError, md, "too many arguments")
	}

	// set debugging log echo
	if env.Log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
	logger.Log(env, "eartrainer", version.String())

	g, err := loader.Load(name, env.Games)
	if err != nil {
		return err
	}

	if env.Statsview {
		if !statsview.Available() {
			return curated.Errorf(argumentError, md, "statsview not included in this build")
		}
		statsview.Launch(os.Stdout, env)
	}

	var pcm *synth.PCM
	if env.Sample != "" {
		pcm, err = synth.Load(env, env.Sample)
		if err != nil {
			return err
		}
	}
	syn := synth.New(synth.SampleRate, pcm)

	scr, err := sdlplay.NewSdlPlay(env, version.ApplicationName, env.Width, env.Height)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	aud, err := sdlaudio.NewAudio(env, syn, syn.Rate())
	if err != nil {
		return err
	}
	defer aud.Close()

	if env.Wav != "" {
		aw, err := wavwriter.New(env, env.Wav, syn.Rate())
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.Close(); err != nil {
				logger.Log(env, "wavwriter", err)
			}
		}()
		aud.SetRecorder(aw)
	}

	w, h := scr.Size()
	layout, err := keyboard.NewLayout(keyboard.DefaultLow, keyboard.DefaultHigh, w, h)
	if err != nil {
		return err
	}
	pk := userinput.NewPointerKeyboard(scr, layout, syn)

	// the detector must be a nil interface and not a nil pointer if MIDI is
	// not wanted
	var det userinput.Detector
	if !env.NoMidi {
		mdet := mididevice.NewDetector(env, env.MidiDevice)
		defer mdet.Close()
		det = mdet
	}
	adapter := userinput.Select(env, det, pk)

	return performance.RunProfiler(prf, "play", func() error {
		return playmode.Play(env, scr, adapter, g, syn, aud)
	})
}

func list(md *modalflag.Modes, env *environment.Environment) error {
	md.NewMode()

	games := md.AddString("games", env.Games, "directory of game scripts")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, md, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, md, "too many arguments")
	}

	for _, n := range loader.Builtin() {
		fmt.Println(n)
	}

	scripts, err := loader.Scripts(*games)
	if err != nil {
		return err
	}
	for _, n := range scripts {
		fmt.Printf("%s (script)\n", n)
	}

	return nil
}

func devices(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, md, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, md, "too many arguments")
	}

	names, err := mididevice.ListInputs()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no MIDI inputs")
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}

	return nil
}
