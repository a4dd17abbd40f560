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

// Package loader creates a game.Game from the name given on the command line.
package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/game"
	"github.com/jetsetilly/eartrainer/game/luagame"
	"github.com/jetsetilly/eartrainer/game/monitor"
	"github.com/jetsetilly/eartrainer/game/pitchmatch"
	"github.com/jetsetilly/eartrainer/random"
)

// UnknownGameError is returned when no game of that name can be found.
const UnknownGameError = "unknown game: %s"

var builtin = map[string]func() game.Game{
	monitor.Name: func() game.Game {
		return monitor.NewMonitor()
	},
	pitchmatch.Name: func() game.Game {
		return pitchmatch.NewPitchMatch(random.NewRandom())
	},
}

// Builtin returns the names of the built-in games in alphabetical order.
func Builtin() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Scripts returns the names of the game scripts in the directory, without the
// file extension. A directory that does not exist has no scripts.
func Scripts(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf("loader: %v", err)
	}

	var names []string
	for _, e := range ents {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), luagame.Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	slices.Sort(names)
	return names, nil
}

// Load the named game. A built-in game is used in preference to a script in
// the games directory. The name can also be the path of a script file.
func Load(name string, dir string) (game.Game, error) {
	if create, ok := builtin[strings.ToLower(name)]; ok {
		return create(), nil
	}

	var fn string
	if strings.EqualFold(filepath.Ext(name), luagame.Extension) {
		if _, err := os.Stat(name); err == nil {
			fn = name
		}
	}
	if fn == "" && dir != "" {
		if _, err := os.Stat(filepath.Join(dir, name+luagame.Extension)); err == nil {
			fn = filepath.Join(dir, name+luagame.Extension)
		}
	}
	if fn == "" {
		return nil, curated.Errorf(UnknownGameError, name)
	}

	g, err := luagame.Load(fn)
	if err != nil {
		return nil, err
	}
	return g, nil
}
