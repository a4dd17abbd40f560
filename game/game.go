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

package game

import (
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/dispatch"
)

// Sentinal errors.
const (
	AlreadyBegunError = "game: already begun"
	NotBegunError     = "game: update before begin"
	BeginError        = "game: begin: %v"
	UpdateError       = "game: update: %v"
)

// Game is the interface implemented by every ear-training exercise.
type Game interface {
	// Begin is called once. The game should register its listeners and spawn
	// any tasks it needs.
	Begin(ctx *dispatch.Context) error

	// Update is called once per frame.
	Update(ctx *dispatch.Context) error
}

// Controller owns the active game and makes sure that the Game functions are
// called in the correct order.
type Controller struct {
	game   Game
	active bool
	frames int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(g Game) *Controller {
	return &Controller{game: g}
}

// Begin the game. It is an error to call Begin() more than once.
func (c *Controller) Begin(ctx *dispatch.Context) error {
	if c.active {
		return curated.Errorf(AlreadyBegunError)
	}
	if err := c.game.Begin(ctx); err != nil {
		return curated.Errorf(BeginError, err)
	}
	c.active = true
	return nil
}

// Update the game. It is an error to call Update() before Begin().
func (c *Controller) Update(ctx *dispatch.Context) error {
	if !c.active {
		return curated.Errorf(NotBegunError)
	}
	c.frames++
	if err := c.game.Update(ctx); err != nil {
		return curated.Errorf(UpdateError, err)
	}
	return nil
}

// Active returns true if the game has begun.
func (c *Controller) Active() bool {
	return c.active
}

// Frames returns the number of times Update() has been called.
func (c *Controller) Frames() int {
	return c.frames
}
