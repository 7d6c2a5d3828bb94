// SPDX-License-Identifier: EPL-2.0

// Package wav writes audio.Buffer contents as PCM WAV files and reads them
// back for verification.
//
// # Writing WAV Files
//
// Write serializes a buffer in its own format (any channel count, 8-bit
// unsigned or 16-bit signed samples):
//
//	file, _ := os.Create("side1.wav")
//	err := wav.Write(file, side)
//
// WriteFile does the same through a temporary file that is renamed into
// place once complete.
//
// The RIFF and data chunk sizes are computed from the buffer at write time,
// so a buffer may be appended to or cleared between writes.
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes): "RIFF", 36 + data size, "WAVE"
//   - fmt chunk (24 bytes): PCM tag, channels, sample rate, byte rate,
//     block align, bits per sample
//   - data chunk: "data", data size, raw samples
//
// All fields are little endian and written at fixed offsets.
//
// # Verification
//
// Inspect decodes a file with github.com/go-audio/wav, independently of the
// writer, and Verify checks a written file against its source buffer:
//
//	if err := wav.Verify("side1.wav", side); err != nil {
//	    // errors.Is(err, wav.ErrVerifyMismatch)
//	}
//
// # Error Handling
//
//   - ErrNotWavFile: input is not a RIFF/WAVE file
//   - ErrNotPCM: the fmt chunk is not plain PCM
//   - ErrTooLarge: samples exceed the 32-bit RIFF size fields
//   - ErrVerifyMismatch: a read back file differs from its buffer
package wav
