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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator.
type Random struct {
	// the number of values returned so far
	count int64

	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	rnd.count++
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.count))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.count))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rand().Intn(n)
}

// Between returns a random number in the range low to high inclusive.
func (rnd *Random) Between(low int, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + rnd.Intn(high-low+1)
}
