// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/tapwav/utils"
)

// Level is one of the two amplitudes of a square wave.
type Level int

const (
	Low Level = iota
	High
)

// Format describes the PCM layout of a Buffer. Samples are interleaved per
// frame; 8-bit samples are unsigned and 16-bit samples are signed little
// endian, as in canonical WAV files.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultFormat is mono 8-bit at a rate high enough for full-speed C64 pulses.
var DefaultFormat = Format{SampleRate: 96000, Channels: 1, BitDepth: 8}

func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	}

	if f.Channels <= 0 || f.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	}

	if f.BitDepth != 8 && f.BitDepth != 16 {
		return fmt.Errorf("%w: bit depth %d", ErrInvalidFormat, f.BitDepth)
	}

	if uint64(f.ByteRate()) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate overflows", ErrInvalidFormat)
	}

	return nil
}

func (f Format) BytesPerSample() int { return f.BitDepth / 8 }
func (f Format) FrameSize() int      { return f.Channels * f.BytesPerSample() }
func (f Format) BlockAlign() int     { return f.FrameSize() }
func (f Format) ByteRate() int       { return f.SampleRate * f.FrameSize() }

// MicrosPerSample is the duration of a single frame in microseconds.
func (f Format) MicrosPerSample() float64 { return utils.MicrosPerSample(f.SampleRate) }

// GoAudio returns the equivalent go-audio format description.
func (f Format) GoAudio() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: f.Channels,
		SampleRate:  f.SampleRate,
	}
}

// frame returns the encoded bytes of one frame at level.
func (f Format) frame(level Level) []byte {
	sample := make([]byte, f.BytesPerSample())

	switch f.BitDepth {
	case 8:
		if level == High {
			sample[0] = math.MaxUint8
		}
	case 16:
		v := int16(math.MinInt16)
		if level == High {
			v = math.MaxInt16
		}
		binary.LittleEndian.PutUint16(sample, uint16(v))
	}

	out := make([]byte, 0, f.FrameSize())
	for range f.Channels {
		out = append(out, sample...)
	}

	return out
}
