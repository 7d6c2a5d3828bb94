// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/tapwav/utils"
)

// IndexEntry records where one source's audio lives inside a Buffer.
// Offset and Length are counted in frames.
type IndexEntry struct {
	Offset int
	Length int
	Source string
}

// Buffer is an in-memory PCM sample run plus an index of the sources it was
// assembled from. A Buffer that is appended onto another one gives up its
// samples; it is never shared between two owners. Buffers are made with
// NewBuffer; the zero value reports itself empty.
type Buffer struct {
	format Format
	data   []byte
	index  []IndexEntry

	// cached encoded frames for the two square wave levels
	high []byte
	low  []byte
}

// NewBuffer returns an empty buffer. format must be valid.
func NewBuffer(format Format) *Buffer {
	return &Buffer{
		format: format,
		high:   format.frame(High),
		low:    format.frame(Low),
	}
}

func (b *Buffer) Format() Format { return b.format }

// Len returns the number of frames in the buffer. A zero Buffer is empty.
func (b *Buffer) Len() int {
	size := b.format.FrameSize()
	if size <= 0 {
		return 0
	}

	return len(b.data) / size
}

// Seconds returns the playing time of the buffer.
func (b *Buffer) Seconds() float64 { return utils.SamplesToSeconds(b.Len(), b.format.SampleRate) }

func (b *Buffer) Duration() time.Duration {
	if b.format.SampleRate <= 0 {
		return 0
	}

	return time.Duration(int64(b.Len()) * int64(time.Second) / int64(b.format.SampleRate))
}

// Bytes returns the raw PCM data. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Index returns a copy of the buffer's source index, ordered by offset.
func (b *Buffer) Index() []IndexEntry {
	out := make([]IndexEntry, len(b.index))
	copy(out, b.index)

	return out
}

// Grow makes room for at least n more frames.
func (b *Buffer) Grow(n int) {
	need := n * b.format.FrameSize()
	if cap(b.data)-len(b.data) >= need {
		return
	}

	grown := make([]byte, len(b.data), len(b.data)+max(need, cap(b.data)))
	copy(grown, b.data)
	b.data = grown
}

// AddLevel appends n frames at the given level.
func (b *Buffer) AddLevel(level Level, n int) {
	if n <= 0 {
		return
	}

	frame := b.low
	if level == High {
		frame = b.high
	}

	b.Grow(n)
	for range n {
		b.data = append(b.data, frame...)
	}
}

// AddSilence appends d worth of low level frames.
func (b *Buffer) AddSilence(d time.Duration) {
	if d <= 0 {
		return
	}

	b.AddLevel(Low, int(int64(d)*int64(b.format.SampleRate)/int64(time.Second)))
}

// Label replaces the index with a single entry covering the whole buffer.
func (b *Buffer) Label(source string) {
	b.index = []IndexEntry{{Offset: 0, Length: b.Len(), Source: source}}
}

// Append moves the samples and index entries of donor to the end of b.
// The appended entries are re-based onto b's prior length and donor is left
// empty.
func (b *Buffer) Append(donor *Buffer) error {
	if donor == b {
		return ErrSelfAppend
	}

	if donor.format != b.format {
		return ErrFormatMismatch
	}

	base := b.Len()
	b.data = append(b.data, donor.data...)

	for _, entry := range donor.index {
		entry.Offset += base
		b.index = append(b.index, entry)
	}

	donor.Clear()

	return nil
}

// Clear empties both the samples and the index.
func (b *Buffer) Clear() {
	b.data = nil
	b.index = nil
}

// IntBuffer converts the samples into a go-audio integer buffer. 8-bit
// samples keep their unsigned value and 16-bit samples are sign extended.
func (b *Buffer) IntBuffer() *goaudio.IntBuffer {
	width := b.format.BytesPerSample()
	data := make([]int, len(b.data)/width)

	for i := range data {
		switch width {
		case 1:
			data[i] = int(b.data[i])
		case 2:
			data[i] = int(int16(binary.LittleEndian.Uint16(b.data[2*i:])))
		}
	}

	return &goaudio.IntBuffer{
		Format:         b.format.GoAudio(),
		Data:           data,
		SourceBitDepth: b.format.BitDepth,
	}
}
