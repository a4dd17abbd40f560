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

// Package scheduler is a single-threaded cooperative task queue. Games use it
// to run work that spans more than one frame (for example, playing a prompt
// note and releasing it a short time later).
//
// Tasks never run concurrently with the main loop. The main loop calls
// Yield() once per frame and every live task is stepped exactly once. A task
// that is spawned during a Yield() (by another task, or by an event listener)
// is first stepped on the following Yield().
package scheduler

import (
	"time"

	"github.com/jetsetilly/eartrainer/curated"
)

// TaskError is the pattern used to wrap errors returned by a task.
const TaskError = "task: %v"

// Task is a unit of cooperative work. Step() is called once per frame until
// it returns done. Any error ends the run of the scheduler.
type Task interface {
	Step() (done bool, err error)
}

// TaskFunc is a function that implements the Task interface.
type TaskFunc func() (bool, error)

// Step implements the Task interface.
func (f TaskFunc) Step() (bool, error) {
	return f()
}

// Scheduler is the queue of live tasks. The zero value is ready to use.
type Scheduler struct {
	tasks []Task

	// tasks spawned since the start of the most recent Yield()
	pending []Task
}

// Spawn adds a task to the scheduler. It will be stepped for the first time
// during the next call to Yield().
func (s *Scheduler) Spawn(t Task) {
	if t == nil {
		return
	}
	s.pending = append(s.pending, t)
}

// Len returns the number of tasks that have not yet finished, including those
// waiting to be stepped for the first time.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.pending)
}

// Yield steps every live task once. Finished tasks are removed from the
// queue. Stepping stops at the first error, which is returned. Tasks that have
// not been stepped when the error occurs remain in the queue.
func (s *Scheduler) Yield() error {
	s.tasks = append(s.tasks, s.pending...)
	s.pending = s.pending[:0]

	// the length of the queue is fixed at this point. tasks spawned while
	// stepping are added to pending and not to the queue being iterated
	live := s.tasks[:0]
	for i, t := range s.tasks {
		done, err := t.Step()
		if err != nil {
			if !done {
				live = append(live, t)
			}
			live = append(live, s.tasks[i+1:]...)
			s.tasks = live
			return curated.Errorf(TaskError, err)
		}
		if !done {
			live = append(live, t)
		}
	}

	// clear references to finished tasks
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	return nil
}

// After returns a task that waits for the number of frames before calling the
// function once. A frames value of zero or less calls the function on the
// first step.
func After(frames int, f func() error) Task {
	return TaskFunc(func() (bool, error) {
		if frames > 0 {
			frames--
			return false, nil
		}
		return true, f()
	})
}

// Every returns a task that calls the function on the first step and then
// every number of frames. The task ends when the function returns true or an
// error.
func Every(frames int, f func() (bool, error)) Task {
	if frames < 1 {
		frames = 1
	}
	count := 0
	return TaskFunc(func() (bool, error) {
		if count > 0 {
			count--
			return false, nil
		}
		count = frames - 1
		return f()
	})
}

// Sequence returns a task that runs each task in turn. The next task in the
// sequence is stepped for the first time on the frame after the previous task
// finishes.
func Sequence(tasks ...Task) Task {
	return TaskFunc(func() (bool, error) {
		if len(tasks) == 0 {
			return true, nil
		}
		done, err := tasks[0].Step()
		if err != nil || !done {
			return false, err
		}
		tasks = tasks[1:]
		return len(tasks) == 0, nil
	})
}

// Delay returns a task that calls the function once the duration has passed.
// The duration is measured from the first step of the task. The now argument
// is the clock to use. If it is nil then time.Now() is used.
func Delay(d time.Duration, now func() time.Time, f func() error) Task {
	if now == nil {
		now = time.Now
	}
	var start time.Time
	return TaskFunc(func() (bool, error) {
		if start.IsZero() {
			start = now()
		}
		if now().Sub(start) < d {
			return false, nil
		}
		return true, f()
	})
}
