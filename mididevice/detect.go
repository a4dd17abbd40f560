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
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/userinput"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Detector implements the userinput.Detector interface.
type Detector struct {
	// name pattern of the device to use. if empty the device is chosen with
	// the Pick() function rules
	Pattern string

	// the opened device. nil until Detect() has found a device
	Device *Device

	perm logger.Permission
}

// NewDetector is the preferred method of initialisation for the Detector type.
func NewDetector(perm logger.Permission, pattern string) *Detector {
	return &Detector{Pattern: pattern, perm: perm}
}

// Detect implements the userinput.Detector interface. Failure to find or to
// open a device is logged and is not returned as an error.
func (det *Detector) Detect() (userinput.RawDevice, bool) {
	dev, err := Open(det.perm, det.Pattern)
	if err != nil {
		logger.Log(det.perm, logTag, err)
		return nil, false
	}
	if dev == nil {
		return nil, false
	}
	det.Device = dev
	return dev, true
}

// Close the device if one was detected.
func (det *Detector) Close() error {
	if det.Device == nil {
		return nil
	}
	return det.Device.Close()
}

// ListInputs returns the names of all MIDI inputs.
func ListInputs() ([]string, error) {
	drv, err := openDriver()
	if err != nil {
		return nil, curated.Errorf(DriverError, err)
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return nil, curated.Errorf(DriverError, err)
	}

	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names, nil
}

// Open the MIDI input chosen by the Pick() function. Returns nil and no error
// if there is no suitable input.
func Open(perm logger.Permission, pattern string) (*Device, error) {
	drv, err := openDriver()
	if err != nil {
		return nil, curated.Errorf(DriverError, err)
	}

	ins, err := drv.Ins()
	if err != nil {
		drv.Close()
		return nil, curated.Errorf(DriverError, err)
	}

	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	logger.Logf(perm, logTag, "%d inputs found", len(names))

	name, ok := Pick(names, pattern)
	if !ok {
		drv.Close()
		return nil, nil
	}

	var found drivers.In
	for _, in := range ins {
		if in.String() == name {
			found = in
			break
		}
	}

	if err := found.Open(); err != nil {
		drv.Close()
		return nil, curated.Errorf(OpenError, name, err)
	}

	dev := newDevice(perm, name)
	dev.drv = drv
	dev.in = found

	dev.stop, err = midi.ListenTo(found, func(msg midi.Message, _ int32) {
		dev.receive(msg)
	}, midi.HandleError(func(err error) {
		logger.Log(perm, logTag, curated.Errorf(OpenError, name, err))
	}))
	if err != nil {
		found.Close()
		drv.Close()
		return nil, curated.Errorf(OpenError, name, err)
	}

	logger.Logf(perm, logTag, "opened %s", name)

	return dev, nil
}
