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

package mididevice

import (
	"strings"
)

// Preferred lists name patterns of devices that are picked before any other.
var Preferred = []string{"Launchkey", "Novation", "Keystation", "Digital Piano"}

// Excluded lists name patterns of virtual or system ports that are never
// picked unless they are named explicitly.
var Excluded = []string{"Midi Through", "Through Port", "Dummy"}

func containsFold(s string, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if containsFold(s, p) {
			return true
		}
	}
	return false
}

// Pick chooses one name from the list of input names. If pattern is not empty
// then the first name that contains the pattern is chosen, and the Preferred
// and Excluded lists are not consulted.
//
// Otherwise names matching the Excluded list are removed and the first name
// matching the Preferred list is chosen. If there is no preferred name the
// first remaining name is chosen.
//
// Matching is not case sensitive.
func Pick(names []string, pattern string) (string, bool) {
	if pattern != "" {
		for _, n := range names {
			if containsFold(n, pattern) {
				return n, true
			}
		}
		return "", false
	}

	var candidates []string
	for _, n := range names {
		if !matchesAny(n, Excluded) {
			candidates = append(candidates, n)
		}
	}

	for _, p := range Preferred {
		for _, n := range candidates {
			if containsFold(n, p) {
				return n, true
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[0], true
	}

	return "", false
}
