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

package events_test

import (
	"testing"

	"github.com/jetsetilly/eartrainer/events"
	"github.com/jetsetilly/eartrainer/test"
)

func TestKinds(t *testing.T) {
	var ev events.Event

	ev = events.KeyEvent{Note: 60, Velocity: 127, Pressed: true}
	test.ExpectEquality(t, ev.Kind(), events.KindKey)

	ev = events.KeystrokeEvent{Code: events.CodeSpace, Pressed: true}
	test.ExpectEquality(t, ev.Kind(), events.KindKeystroke)

	test.ExpectEquality(t, events.KindKey.String(), "key")
	test.ExpectEquality(t, events.Kind(99).String(), "kind(99)")
}

func TestEquality(t *testing.T) {
	a := events.KeyEvent{Note: 64, Velocity: 100, Pressed: true}
	b := events.KeyEvent{Note: 64, Velocity: 100, Pressed: true}
	test.ExpectEquality(t, a, b)

	b.Pressed = false
	test.ExpectInequality(t, a, b)

	test.ExpectEquality(t, a.String(), "note 64 on (100)")
	test.ExpectEquality(t, b.String(), "note 64 off")
}
