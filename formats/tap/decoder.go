// SPDX-License-Identifier: EPL-2.0

package tap

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/tapwav/audio"
	"github.com/ik5/tapwav/utils"
)

// Tape is a fully loaded TAP image with a read cursor over its pulse bytes.
type Tape struct {
	header Header
	freq   uint32
	data   []byte
	pos    int
}

// NewTape reads a whole TAP container from r. The header must be valid and
// exactly DataSize pulse bytes must follow it, with nothing after them.
func NewTape(r io.Reader) (*Tape, error) {
	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("reading TAP header: %w", err)
	}

	header, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}

	// One extra byte tells trailing garbage apart from an exact fit without
	// trusting DataSize for the allocation.
	data, err := io.ReadAll(io.LimitReader(r, int64(header.DataSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading TAP data: %w", err)
	}

	switch {
	case int64(len(data)) < int64(header.DataSize):
		return nil, fmt.Errorf("%w: have %d of %d data bytes", ErrTruncated, len(data), header.DataSize)
	case int64(len(data)) > int64(header.DataSize):
		return nil, ErrTrailingData
	}

	return &Tape{
		header: header,
		freq:   header.Frequency(),
		data:   data,
	}, nil
}

func (t *Tape) Header() Header { return t.header }

// HasMorePeriods reports whether any pulse bytes remain.
func (t *Tape) HasMorePeriods() bool { return t.pos < len(t.data) }

// Rewind moves the cursor back to the first pulse.
func (t *Tape) Rewind() { t.pos = 0 }

// NextPeriod decodes the next pulse into microseconds.
//
// A non-zero byte b is a pulse of b counter units. A zero byte introduces an
// extended pulse: version 1 stores it in the following three bytes (little
// endian, eight times the resolution of a regular byte), version 0 has no
// encoding for it.
func (t *Tape) NextPeriod() (uint32, error) {
	b, err := t.nextByte()
	if err != nil {
		return 0, err
	}

	if b != 0 {
		return utils.PulseMicros(uint32(b), t.freq), nil
	}

	if t.header.Version == 0 {
		return 0, fmt.Errorf("%w: at offset %d", ErrUnsupportedFeature, HeaderSize+t.pos-1)
	}

	var pause uint32
	for shift := 0; shift < 24; shift += 8 {
		b, err := t.nextByte()
		if err != nil {
			return 0, err
		}
		pause |= uint32(b) << shift
	}

	return utils.PulseMicros(pause>>3, t.freq), nil
}

func (t *Tape) nextByte() (byte, error) {
	if t.pos >= len(t.data) {
		return 0, ErrOutOfRange
	}

	b := t.data[t.pos]
	t.pos++

	return b, nil
}

// Decoder reads TAP containers.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.PeriodSource, error) {
	t, err := NewTape(r)
	if err != nil {
		return nil, err
	}

	return t, nil
}
