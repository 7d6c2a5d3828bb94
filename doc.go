// SPDX-License-Identifier: EPL-2.0

// Package tapwav converts Commodore TAP tape images into square-wave PCM
// WAV files that a datasette can load back from a real cassette.
//
// # Pipeline
//
// Each image is decoded into pulse periods (formats/tap), rendered as a two
// level square wave followed by a gap of silence (audio), ordered longest
// first and packed onto cassette sides of bounded length (sides). Every side
// is then written as one WAV file (formats/wav).
//
//	conv := tapwav.NewConverter(tapwav.DefaultOptions())
//	out, err := conv.Sides([]string{"game.tap", "demo.tap"})
//	if err != nil {
//	    return err
//	}
//	for i, side := range out {
//	    if err := wav.WriteFile(tapwav.OutputName("side", i+1), side); err != nil {
//	        return err
//	    }
//	}
//
// # Output format
//
// The default is 96 kHz mono 8-bit PCM. Lower rates render short pulses
// with only a handful of samples per half-cycle; when that happens the
// Converter logs a warning and keeps going.
//
// # Index
//
// Every side carries an index of the tapes it holds (audio.IndexEntry),
// with offsets and lengths in frames. The tap2wav command prints it after
// writing each side.
package tapwav
