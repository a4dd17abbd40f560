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
	"sync/atomic"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/jetsetilly/eartrainer/userinput"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Sentinal errors.
const (
	DriverError = "midi driver: %v"
	OpenError   = "midi device (%s): %v"
	ClosedError = "midi device (%s): closed"
)

const logTag = "midi"

// the number of messages that can be waiting before new messages are dropped
const bufferSize = 256

// Device is an open MIDI input.
type Device struct {
	name string

	drv  drivers.Driver
	in   drivers.In
	stop func()

	msgs    chan userinput.RawMessage
	dropped atomic.Int64
	closed  bool

	perm logger.Permission
}

func newDevice(perm logger.Permission, name string) *Device {
	return &Device{
		name: name,
		msgs: make(chan userinput.RawMessage, bufferSize),
		perm: perm,
	}
}

// Name returns the name of the MIDI input as reported by the driver.
func (dev *Device) Name() string {
	return dev.name
}

// receive is called by the listener goroutine.
func (dev *Device) receive(msg midi.Message) {
	if len(msg) == 0 {
		return
	}

	// system common and system realtime messages (clock, active sensing,
	// sysex) are not note messages
	if msg[0] >= 0xf0 {
		return
	}

	raw := userinput.RawMessage{Status: msg[0]}
	if len(msg) > 1 {
		raw.Data1 = msg[1]
	}
	if len(msg) > 2 {
		raw.Data2 = msg[2]
	}

	select {
	case dev.msgs <- raw:
	default:
		if dev.dropped.Add(1) == 1 {
			logger.Logf(dev.perm, logTag, "%s: input buffer full. dropping messages", dev.name)
		}
	}
}

// Poll implements the userinput.RawDevice interface.
func (dev *Device) Poll() bool {
	return len(dev.msgs) > 0
}

// Read implements the userinput.RawDevice interface.
func (dev *Device) Read(max int) ([]userinput.RawMessage, error) {
	if dev.closed {
		return nil, curated.Errorf(ClosedError, dev.name)
	}

	var msgs []userinput.RawMessage
	for len(msgs) < max {
		select {
		case m := <-dev.msgs:
			msgs = append(msgs, m)
		default:
			return msgs, nil
		}
	}
	return msgs, nil
}

// Dropped returns the number of messages lost because the buffer was full.
func (dev *Device) Dropped() int64 {
	return dev.dropped.Load()
}

// Close the device and the driver that opened it.
func (dev *Device) Close() error {
	if dev.closed {
		return nil
	}
	dev.closed = true

	if dev.stop != nil {
		dev.stop()
	}

	var err error
	if dev.in != nil {
		err = dev.in.Close()
	}
	if dev.drv != nil {
		if e := dev.drv.Close(); err == nil {
			err = e
		}
	}
	if err != nil {
		return curated.Errorf(OpenError, dev.name, err)
	}
	return nil
}
