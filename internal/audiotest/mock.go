// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"errors"
)

// ErrExhausted is returned by MockPeriodSource when read past its end.
var ErrExhausted = errors.New("audiotest: no more periods")

// MockPeriodSource is a test helper that replays a fixed list of periods.
// It implements the audio.PeriodSource interface (without importing it to
// avoid cycles).
type MockPeriodSource struct {
	periods []uint32
	pos     int

	// FailAt makes NextPeriod return Err at that position when Err is set.
	FailAt int
	Err    error
}

// NewMockPeriodSource creates a source replaying periods in order.
func NewMockPeriodSource(periods ...uint32) *MockPeriodSource {
	return &MockPeriodSource{periods: periods, FailAt: -1}
}

// NewConstantSource creates a source of count identical periods.
func NewConstantSource(period uint32, count int) *MockPeriodSource {
	periods := make([]uint32, count)
	for i := range periods {
		periods[i] = period
	}

	return NewMockPeriodSource(periods...)
}

func (m *MockPeriodSource) HasMorePeriods() bool { return m.pos < len(m.periods) }

func (m *MockPeriodSource) NextPeriod() (uint32, error) {
	if m.Err != nil && m.pos == m.FailAt {
		return 0, m.Err
	}

	if m.pos >= len(m.periods) {
		return 0, ErrExhausted
	}

	p := m.periods[m.pos]
	m.pos++

	return p, nil
}

// Reset rewinds the source to allow re-reading.
func (m *MockPeriodSource) Reset() {
	m.pos = 0
}

// TAPHeaderSize is the length of a TAP container header.
const TAPHeaderSize = 20

// BuildTAP assembles a TAP container around data with a correct size field.
func BuildTAP(version, machine, video byte, data []byte) []byte {
	return BuildTAPWithSize(version, machine, video, uint32(len(data)), data)
}

// BuildTAPWithSize assembles a TAP container whose size field says size,
// regardless of how much data follows.
func BuildTAPWithSize(version, machine, video byte, size uint32, data []byte) []byte {
	prefix := "C64-"
	switch machine {
	case 1:
		prefix = "VIC-"
	case 2:
		prefix = "C16-"
	}

	out := make([]byte, TAPHeaderSize, TAPHeaderSize+len(data))
	copy(out[0:12], prefix+"TAPE-RAW")
	out[12] = version
	out[13] = machine
	out[14] = video
	binary.LittleEndian.PutUint32(out[16:20], size)

	return append(out, data...)
}
