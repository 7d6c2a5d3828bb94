// SPDX-License-Identifier: EPL-2.0

// Package tap decodes Commodore TAP tape images into pulse periods.
//
// A TAP file records the time between falling edges of the datasette read
// line as counter bytes. This package reads versions 0 and 1 of the
// "C64-TAPE-RAW" container used for the C64, VIC-20 and C16/Plus4.
//
// # File Format
//
// The container is a 20-byte header followed by the pulse bytes:
//   - marker (12 bytes): a 4 character machine prefix and "TAPE-RAW"
//   - version (1 byte): 0 or 1
//   - machine (1 byte): 0=C64, 1=VIC, 2=C16
//   - video standard (1 byte): 0=PAL, 1=NTSC
//   - reserved (1 byte)
//   - data size (4 bytes, little endian)
//
// The data size must match the remaining length of the file exactly.
//
// # Decoding
//
//	file, _ := os.Open("game.tap")
//	tape, err := tap.NewTape(file)
//	if err != nil {
//	    // errors.Is(err, tap.ErrFormat) for framing problems
//	}
//
//	for tape.HasMorePeriods() {
//	    period, err := tape.NextPeriod() // microseconds
//	    ...
//	}
//
// Decoder adapts NewTape to the audio.Decoder interface so it can be put in
// an audio.Registry.
//
// # Pulse Encoding
//
// A non-zero byte b is a pulse of round((b + 0.5) * 1e6 / clock)
// microseconds, where the clock depends on machine and video standard. A
// zero byte in a version 1 image is followed by a 24-bit little endian
// counter at eight times the resolution; in a version 0 image it is
// rejected with ErrUnsupportedFeature.
//
// # Error Handling
//
//   - ErrFormat and the errors wrapping it: bad marker, version, machine,
//     video standard, truncated or over-long container
//   - ErrOutOfRange: NextPeriod called with no pulse bytes left
//   - ErrUnsupportedFeature: extended pulse in a version 0 image
package tap
