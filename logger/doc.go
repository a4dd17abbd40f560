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

// Package logger is the central log repository for eartrainer. Log entries
// are made up of a tag and a detail string. Consecutive identical entries are
// folded into one entry with a repeat count.
//
// The package level functions write to a single central log. Separate logs
// can be created with NewLogger(), which is mostly useful for testing.
//
// Whether an entry is added to the log is decided by the Permission argument.
// The Allow value can be used when there is no reason to suppress an entry.
package logger
