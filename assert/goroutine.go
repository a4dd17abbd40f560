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

// Package assert contains debugging helpers for checking that code is running
// where it is expected to run.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or for checking
// ownership. It should not be used to pass information between goroutines.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it. The Check() function panics
// if it is called from any other goroutine.
type Owner struct {
	id uint64
}

// NewOwner is the preferred method of initialisation for the Owner type.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// Check panics with the supplied context string if the calling goroutine is
// not the owner.
func (o Owner) Check(context string) {
	if o.id == 0 {
		return
	}
	if id := GoroutineID(); id != o.id {
		panic(context + ": called from goroutine " + strconv.FormatUint(id, 10) +
			" but owned by goroutine " + strconv.FormatUint(o.id, 10))
	}
}
