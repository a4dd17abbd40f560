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

package scheduler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/scheduler"
	"github.com/jetsetilly/eartrainer/test"
)

// counter is a task that finishes after a number of steps
type counter struct {
	steps int
	limit int
}

func (c *counter) Step() (bool, error) {
	c.steps++
	return c.steps >= c.limit, nil
}

func TestYield(t *testing.T) {
	var s scheduler.Scheduler

	// yielding with no tasks is fine
	test.ExpectSuccess(t, s.Yield())

	a := &counter{limit: 1}
	b := &counter{limit: 3}
	s.Spawn(a)
	s.Spawn(b)
	test.ExpectEquality(t, s.Len(), 2)

	// tasks are not stepped until Yield()
	test.ExpectEquality(t, a.steps, 0)

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, a.steps, 1)
	test.ExpectEquality(t, b.steps, 1)
	test.ExpectEquality(t, s.Len(), 1)

	test.ExpectSuccess(t, s.Yield())
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, b.steps, 3)
	test.ExpectEquality(t, s.Len(), 0)

	// finished tasks are not stepped again
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, a.steps, 1)
	test.ExpectEquality(t, b.steps, 3)
}

func TestSpawnDuringYield(t *testing.T) {
	var s scheduler.Scheduler

	child := &counter{limit: 1}
	s.Spawn(scheduler.TaskFunc(func() (bool, error) {
		s.Spawn(child)
		return true, nil
	}))

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, child.steps, 0)
	test.ExpectEquality(t, s.Len(), 1)

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, child.steps, 1)
	test.ExpectEquality(t, s.Len(), 0)
}

func TestTaskError(t *testing.T) {
	var s scheduler.Scheduler

	errTask := errors.New("task failed")
	after := &counter{limit: 10}

	s.Spawn(scheduler.TaskFunc(func() (bool, error) {
		return true, errTask
	}))
	s.Spawn(after)

	err := s.Yield()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, scheduler.TaskError))
	test.ExpectSuccess(t, errors.Is(err, errTask))

	// the task after the failing task was not stepped but is still queued
	test.ExpectEquality(t, after.steps, 0)
	test.ExpectEquality(t, s.Len(), 1)

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, after.steps, 1)
}

func TestAfter(t *testing.T) {
	var s scheduler.Scheduler

	called := 0
	s.Spawn(scheduler.After(2, func() error {
		called++
		return nil
	}))

	test.ExpectSuccess(t, s.Yield())
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, called, 0)
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, s.Len(), 0)
}

func TestEvery(t *testing.T) {
	var s scheduler.Scheduler

	var frames []int
	frame := 0
	s.Spawn(scheduler.Every(3, func() (bool, error) {
		frames = append(frames, frame)
		return len(frames) == 3, nil
	}))

	for frame = 0; frame < 10; frame++ {
		test.DemandSuccess(t, s.Yield())
	}

	test.DemandEquality(t, len(frames), 3)
	test.ExpectEquality(t, frames[0], 0)
	test.ExpectEquality(t, frames[1], 3)
	test.ExpectEquality(t, frames[2], 6)
	test.ExpectEquality(t, s.Len(), 0)
}

func TestSequence(t *testing.T) {
	var s scheduler.Scheduler

	var order []string
	s.Spawn(scheduler.Sequence(
		scheduler.After(0, func() error {
			order = append(order, "a")
			return nil
		}),
		scheduler.After(1, func() error {
			order = append(order, "b")
			return nil
		}),
	))

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, len(order), 1)
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, len(order), 1)
	test.ExpectSuccess(t, s.Yield())
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[1], "b")
	test.ExpectEquality(t, s.Len(), 0)
}

func TestDelay(t *testing.T) {
	var s scheduler.Scheduler

	clk := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time {
		return clk
	}

	var called int
	s.Spawn(scheduler.Delay(100*time.Millisecond, now, func() error {
		called++
		return nil
	}))

	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, called, 0)

	clk = clk.Add(99 * time.Millisecond)
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, called, 0)

	clk = clk.Add(time.Millisecond)
	test.ExpectSuccess(t, s.Yield())
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, s.Len(), 0)
}
