// SPDX-License-Identifier: EPL-2.0

package tap

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the length of the fixed TAP header in bytes.
const HeaderSize = 20

const (
	markerSize  = 12
	markerMagic = "TAPE-RAW"
	maxVersion  = 1
)

// Machine identifies the computer a tape image was recorded for.
type Machine uint8

const (
	C64 Machine = 0
	VIC Machine = 1
	C16 Machine = 2
)

func (m Machine) String() string {
	switch m {
	case C64:
		return "C64"
	case VIC:
		return "VIC"
	case C16:
		return "C16"
	default:
		return fmt.Sprintf("Machine(%d)", uint8(m))
	}
}

// Video is the video standard, which selects the machine clock.
type Video uint8

const (
	PAL  Video = 0
	NTSC Video = 1
)

func (v Video) String() string {
	switch v {
	case PAL:
		return "PAL"
	case NTSC:
		return "NTSC"
	default:
		return fmt.Sprintf("Video(%d)", uint8(v))
	}
}

// Pulse counter clocks in Hz. VIC NTSC and C64 NTSC share a value.
const (
	FrequencyC64PAL  uint32 = 123156
	FrequencyC64NTSC uint32 = 127841
	FrequencyVICPAL  uint32 = 138551
	FrequencyVICNTSC uint32 = 127841
	FrequencyC16PAL  uint32 = 110840
	FrequencyC16NTSC uint32 = 111860
)

// Frequency returns the pulse counter clock for a machine and video
// standard. ok is false for combinations outside the table.
func Frequency(machine Machine, video Video) (freq uint32, ok bool) {
	switch {
	case machine == C64 && video == PAL:
		return FrequencyC64PAL, true
	case machine == C64 && video == NTSC:
		return FrequencyC64NTSC, true
	case machine == VIC && video == PAL:
		return FrequencyVICPAL, true
	case machine == VIC && video == NTSC:
		return FrequencyVICNTSC, true
	case machine == C16 && video == PAL:
		return FrequencyC16PAL, true
	case machine == C16 && video == NTSC:
		return FrequencyC16NTSC, true
	}

	return 0, false
}

// Header is the fixed-size preamble of a TAP container.
type Header struct {
	Marker   [markerSize]byte
	Version  uint8
	Machine  Machine
	Video    Video
	DataSize uint32
}

// ParseHeader decodes and validates the HeaderSize bytes at the start of b.
func ParseHeader(b []byte) (Header, error) {
	var h Header

	if len(b) < HeaderSize {
		return h, ErrTruncated
	}

	copy(h.Marker[:], b[0:12])
	if !bytes.Equal(h.Marker[4:], []byte(markerMagic)) {
		return h, fmt.Errorf("%w: %q", ErrInvalidMarker, h.MarkerString())
	}

	h.Version = b[12]
	if h.Version > maxVersion {
		return h, fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}

	h.Machine = Machine(b[13])
	if h.Machine > C16 {
		return h, fmt.Errorf("%w: %d", ErrInvalidMachine, b[13])
	}

	h.Video = Video(b[14])
	if h.Video > NTSC {
		return h, fmt.Errorf("%w: %d", ErrInvalidVideo, b[14])
	}

	// b[15] is reserved
	h.DataSize = binary.LittleEndian.Uint32(b[16:20])

	return h, nil
}

// MarkerString returns the marker text with any NUL padding removed.
func (h Header) MarkerString() string {
	return strings.TrimRight(string(h.Marker[:]), "\x00")
}

// Frequency returns the pulse counter clock derived from Machine and Video.
func (h Header) Frequency() uint32 {
	f, _ := Frequency(h.Machine, h.Video)
	return f
}

func (h Header) String() string {
	var sb strings.Builder

	sb.WriteString("TAP file header:\n")
	fmt.Fprintf(&sb, "\tMarker: %s\n", h.MarkerString())
	fmt.Fprintf(&sb, "\tVersion: %d\n", h.Version)
	fmt.Fprintf(&sb, "\tMachine: %s\n", h.Machine)
	fmt.Fprintf(&sb, "\tVideo: %s\n", h.Video)
	fmt.Fprintf(&sb, "\tFrequency: %d\n", h.Frequency())
	fmt.Fprintf(&sb, "\tData size: %d\n", h.DataSize)

	return sb.String()
}
