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

//go:build nomidi

package mididevice

import (
	"github.com/jetsetilly/eartrainer/curated"
	"gitlab.com/gomidi/midi/v2/drivers"
)

func openDriver() (drivers.Driver, error) {
	return nil, curated.Errorf("rtmidi not included in this build")
}
