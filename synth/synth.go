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

package synth

import (
	"math"
)

// SampleRate is the default output sample rate.
const SampleRate = 44100

// envelope times in seconds
const (
	attackTime  = 0.005
	releaseTime = 0.15
)

// MaxVoices is the number of notes that can sound at once. When a new note
// is started and there are no free voices, the oldest voice is stolen.
const MaxVoices = 16

// Frequency returns the frequency in Hz of a MIDI note number.
func Frequency(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}

type voice struct {
	note     int
	amp      float32
	pos      float64
	step     float64
	level    float32
	release  bool
	finished bool
}

// Synth is the synthesiser. It is not safe for concurrent use.
type Synth struct {
	rate int
	pcm  *PCM

	attack  float32
	decay   float32
	voices  []*voice
	gain    float32
}

// New is the preferred method of initialisation for the Synth type. If pcm is
// nil then voices are sine waves.
func New(rate int, pcm *PCM) *Synth {
	if rate <= 0 {
		rate = SampleRate
	}
	return &Synth{
		rate:   rate,
		pcm:    pcm,
		attack: float32(1.0 / (attackTime * float64(rate))),
		decay:  float32(1.0 / (releaseTime * float64(rate))),
		gain:   0.25,
	}
}

// Rate returns the output sample rate.
func (s *Synth) Rate() int {
	return s.rate
}

// Active returns the number of voices that are currently sounding.
func (s *Synth) Active() int {
	return len(s.voices)
}

// NoteOn starts a voice for the note. A note that is already sounding is
// released and a new voice started.
func (s *Synth) NoteOn(note int, velocity int) {
	if velocity <= 0 {
		s.NoteOff(note)
		return
	}

	s.NoteOff(note)

	v := &voice{
		note: note,
		amp:  float32(min(velocity, 127)) / 127.0,
	}

	if s.pcm != nil {
		v.step = s.pcm.Rate / float64(s.rate) * math.Pow(2, float64(note-s.pcm.Root)/12.0)
	} else {
		v.step = Frequency(note) / float64(s.rate)
	}

	if len(s.voices) >= MaxVoices {
		s.voices = s.voices[1:]
	}
	s.voices = append(s.voices, v)
}

// NoteOff releases the voice for the note.
func (s *Synth) NoteOff(note int) {
	for _, v := range s.voices {
		if v.note == note {
			v.release = true
		}
	}
}

// AllOff releases every voice.
func (s *Synth) AllOff() {
	for _, v := range s.voices {
		v.release = true
	}
}

func (s *Synth) sample(v *voice) float32 {
	if s.pcm == nil {
		f := float32(math.Sin(2 * math.Pi * v.pos))
		v.pos += v.step
		if v.pos >= 1.0 {
			v.pos -= 1.0
		}
		return f
	}

	i := int(v.pos)
	if i+1 >= len(s.pcm.Data) {
		v.finished = true
		return 0
	}
	frac := float32(v.pos - float64(i))
	f := s.pcm.Data[i]*(1-frac) + s.pcm.Data[i+1]*frac
	v.pos += v.step
	return f
}

// Generate fills the buffer with mono 16 bit samples.
func (s *Synth) Generate(buf []int16) {
	for i := range buf {
		var mix float32

		for _, v := range s.voices {
			if v.release {
				v.level -= s.decay
				if v.level <= 0 {
					v.level = 0
					v.finished = true
					continue
				}
			} else if v.level < 1.0 {
				v.level = min(v.level+s.attack, 1.0)
			}
			mix += s.sample(v) * v.level * v.amp
		}

		mix *= s.gain
		mix = max(min(mix, 1.0), -1.0)
		buf[i] = int16(mix * math.MaxInt16)

		s.voices = removeFinished(s.voices)
	}
}

func removeFinished(voices []*voice) []*voice {
	n := 0
	for _, v := range voices {
		if !v.finished {
			voices[n] = v
			n++
		}
	}
	clear(voices[n:])
	return voices[:n]
}
