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

// Package game defines the Game interface and the Controller that drives it.
//
// A Game is begun once, at which time it registers its listeners with the
// dispatch.Context, and is then updated once per frame for as long as the
// program runs. Games never end of their own accord.
//
// The built-in games are in the sub-packages of this package. The loader
// sub-package creates a Game by name.
package game
