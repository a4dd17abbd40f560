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

// Package sdlaudio plays the output of a Generator with SDL. The SDL audio
// subsystem must have been initialised, which sdlplay.NewSdlPlay() does.
package sdlaudio

import (
	"encoding/binary"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// AudioError is the pattern used for all errors from this package.
const AudioError = "sdlaudio: %v"

// the buffer length is important to get right. we don't want it to be long
// because we can introduce lag between a key press and the sound. by the same
// token we don't want it too short because the main loop may not service the
// audio often enough and the device will underflow.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// the amount of audio to keep queued, in samples
const queueTarget = bufferLength * 4

// Generator produces mono 16 bit audio.
type Generator interface {
	Generate(buf []int16)
}

// Recorder receives a copy of everything that is queued.
type Recorder interface {
	Write(samples []int16)
}

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	gen Generator
	rec Recorder

	samples []int16
	bytes   []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(perm logger.Permission, gen Generator, rate int) (*Audio, error) {
	aud := &Audio{
		gen:     gen,
		samples: make([]int16, bufferLength),
		bytes:   make([]byte, bufferLength*2),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	logger.Logf(perm, "sdlaudio", "frequency: %dHz", aud.spec.Freq)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetRecorder adds a Recorder. A nil value removes any previous Recorder.
func (aud *Audio) SetRecorder(rec Recorder) {
	aud.rec = rec
}

// Service tops up the SDL audio queue. It should be called once per frame.
func (aud *Audio) Service() error {
	for sdl.GetQueuedAudioSize(aud.id) < queueTarget*2 {
		aud.gen.Generate(aud.samples)
		if aud.rec != nil {
			aud.rec.Write(aud.samples)
		}

		for i, s := range aud.samples {
			binary.LittleEndian.PutUint16(aud.bytes[i*2:], uint16(s))
		}

		if err := sdl.QueueAudio(aud.id, aud.bytes); err != nil {
			return curated.Errorf(AudioError, err)
		}
	}
	return nil
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
