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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "LIST")
//	p, err := md.Parse()
//
// After Parse(), Mode() returns the selected sub-mode. If the first argument
// after the flags is not one of the listed sub-modes then the first sub-mode
// in the list is selected. Mode comparisons are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed by a further call to Parse():
//
//	md.NewMode()
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	p, err = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// functions once the final Parse() has completed.
//
// Help messages are printed automatically when the -help flag is given.
// Parse() returns ParseHelp in that case and the program should exit without
// further output.
package modalflag
