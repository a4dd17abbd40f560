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

// Package environment holds the settings for a run of the program. Settings
// are first read from EARTRAINER_* environment variables and can then be
// overridden by command line flags.
//
// The Environment type implements the logger.Permission interface.
package environment

import (
	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/eartrainer/curated"
)

// Sentinal errors.
const (
	ParseError   = "environment: %v"
	InvalidError = "environment: %s: %v"
)

// Environment is the collection of settings for a run of the program.
type Environment struct {
	// echo the log to stdout as entries are added
	Log bool `env:"EARTRAINER_LOG"`

	// suppress all logging. the environment is the logging permission for
	// every package used by a run of the program
	Quiet bool `env:"EARTRAINER_QUIET"`

	// log listener errors and continue rather than ending the run
	Isolate bool `env:"EARTRAINER_ISOLATE"`

	// frames per second limit. zero is no limit
	FPSCap int `env:"EARTRAINER_FPSCAP" envDefault:"0"`

	// record audio to this file
	Wav string `env:"EARTRAINER_WAV"`

	// instrument sample for the synthesiser
	Sample string `env:"EARTRAINER_SAMPLE"`

	// directory of game scripts
	Games string `env:"EARTRAINER_GAMES" envDefault:"games"`

	// window size
	Width  int `env:"EARTRAINER_WIDTH"  envDefault:"880"`
	Height int `env:"EARTRAINER_HEIGHT" envDefault:"600"`

	// name pattern of the MIDI input to use
	MidiDevice string `env:"EARTRAINER_MIDIDEVICE"`

	// do not look for a MIDI device
	NoMidi bool `env:"EARTRAINER_NOMIDI"`

	// launch the statsview server
	Statsview bool `env:"EARTRAINER_STATSVIEW"`
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
func NewEnvironment() (*Environment, error) {
	e := &Environment{}
	if err := env.Parse(e); err != nil {
		return nil, curated.Errorf(ParseError, err)
	}
	return e, nil
}

// Normalise ensures the environment is in an known default state, regardless
// of environment variables. Useful for testing.
func Normalise() *Environment {
	return &Environment{
		Games:  "games",
		Width:  880,
		Height: 600,
	}
}

// Validate checks that the settings are usable.
func (e *Environment) Validate() error {
	if e.FPSCap < 0 {
		return curated.Errorf(InvalidError, "fpscap", e.FPSCap)
	}
	if e.Width < 100 || e.Height < 100 {
		return curated.Errorf(InvalidError, "window size", "too small")
	}
	return nil
}

// AllowLogging implements the logger.Permission interface.
func (e *Environment) AllowLogging() bool {
	return !e.Quiet
}
