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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/eartrainer/curated"
	"github.com/jetsetilly/eartrainer/logger"
)

// Sentinal errors.
const (
	PCMError         = "synth: %v"
	UnsupportedError = "synth: unsupported sample type (%s)"
)

const logTag = "synth"

// DefaultRoot is the note that a loaded sample is assumed to be playing.
const DefaultRoot = 60

// PCM is a mono instrument sample.
type PCM struct {
	// samples in the range -1.0 to 1.0
	Data []float32

	// sample rate of Data
	Rate float64

	// the note that is sounded when the sample is played at its natural rate
	Root int
}

// Duration of the sample in seconds.
func (p *PCM) Duration() float64 {
	if p.Rate == 0 {
		return 0
	}
	return float64(len(p.Data)) / p.Rate
}

// Load a sample from a .wav or .mp3 file. The first channel only of a
// multichannel file is used.
func Load(perm logger.Permission, filename string) (*PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(PCMError, err)
	}
	defer f.Close()

	var p *PCM

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		p, err = decodeWAV(f)
	case ".mp3":
		p, err = decodeMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedError, ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(perm, logTag, "%s: %0.2fHz %.02fs", filepath.Base(filename), p.Rate, p.Duration())

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(PCMError, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(PCMError, err)
	}

	return &PCM{
		Data: firstChannel(buf),
		Rate: float64(dec.SampleRate),
		Root: DefaultRoot,
	}, nil
}

// firstChannel of the buffer, scaled by the bit depth of the source.
func firstChannel(buf *audio.IntBuffer) []float32 {
	chans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		chans = buf.Format.NumChannels
	}

	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	scale := float32(int64(1) << (depth - 1))

	data := make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		data = append(data, float32(buf.Data[i])/scale)
	}
	return data
}

func decodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(PCMError, err)
	}

	// the decoded stream is always 16bit little endian stereo. a sample is
	// therefore four bytes and the left channel is the first two
	var data []float32
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+3 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(v)/32768.0)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(PCMError, err)
		}
	}

	return &PCM{
		Data: data,
		Rate: float64(dec.SampleRate()),
		Root: DefaultRoot,
	}, nil
}
