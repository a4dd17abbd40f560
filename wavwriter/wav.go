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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the writer is closed. It is therefore only suitable for short
// recordings of a practice session.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/logger"
	"github.com/youpy/go-wav"
)

// WavWriterError is the pattern used for all errors from this package.
const WavWriterError = "wavwriter: %v"

// WavWriter records mono 16 bit audio.
type WavWriter struct {
	filename string
	rate     int
	buffer   []wav.Sample
	perm     logger.Permission
}

// New is the preferred method of initialisation for the WavWriter type.
func New(perm logger.Permission, filename string, rate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavWriterError, "no filename")
	}
	if rate <= 0 {
		return nil, curated.Errorf(WavWriterError, "bad sample rate")
	}

	aw := &WavWriter{
		filename: filename,
		rate:     rate,
		buffer:   make([]wav.Sample, 0),
		perm:     perm,
	}

	return aw, nil
}

// Write adds samples to the recording.
func (aw *WavWriter) Write(samples []int16) {
	for _, s := range samples {
		w := wav.Sample{}
		w.Values[0] = int(s)
		aw.buffer = append(aw.buffer, w)
	}
}

// Len returns the number of samples recorded so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.rate), 16)
	if enc == nil {
		return curated.Errorf(WavWriterError, "bad parameters for wav encoding")
	}

	logger.Logf(aw.perm, "wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}
