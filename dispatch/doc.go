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

// Package dispatch implements the Context that is handed to the running game.
// The Context is an explicitly constructed registry of event listeners, owned
// by one run of the main loop. There is no package level registry.
//
// Listeners are registered for a kind of event (see the events package) and
// are called synchronously, in registration order, when an event of that kind
// is fired. The same listener can be registered more than once and will be
// called once for each registration.
//
// Listeners registered while an event is being fired do not take part in that
// fan-out. They are first called on the next Fire() for that kind.
//
// An error returned by a listener stops the fan-out and is returned to the
// caller of Fire(). The main loop treats this as fatal. The SetIsolation()
// function changes this so that a failing listener is logged and the remaining
// listeners are still called.
//
// The Context is not safe for use by more than one goroutine. It records the
// goroutine that created it and panics if it is used from any other.
package dispatch
