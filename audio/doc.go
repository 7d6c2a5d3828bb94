// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory PCM primitives used to render tape
// images.
//
// This package contains the core building blocks:
//   - PeriodSource interface for decoded pulse streams
//   - Synthesizer for square wave rendering
//   - Buffer and IndexEntry for sample runs that remember their sources
//   - Format registry for decoder registration
//
// # PeriodSource Interface
//
// Tape decoders expose their pulses as a sequential source of periods in
// microseconds:
//
//	type PeriodSource interface {
//	    HasMorePeriods() bool
//	    NextPeriod() (uint32, error)
//	}
//
// # Synthesis
//
// The Synthesizer turns every period into one high and one low half-cycle
// and finishes with a run of silence used as spacing between programs:
//
//	synth := audio.NewSynthesizer(audio.DefaultFormat)
//	synth.OnLowSampleCount = func(n int) {
//	    log.Printf("only %d samples per half-cycle, raise the sample rate", n)
//	}
//	buf, err := synth.Synthesize(tape, 5*time.Second)
//
// # Buffers
//
// A Buffer holds raw PCM bytes in a runtime configurable Format (mono or
// multi-channel, 8-bit unsigned or 16-bit signed) together with an index of
// the sources it contains:
//
//	buf.Label("game.tap")       // one entry covering the whole buffer
//	side := audio.NewBuffer(buf.Format())
//	side.Append(buf)            // moves samples and re-bases the index
//
// Append moves the donor's samples; the donor is empty afterwards so the
// same audio never lives in two buffers.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("tap", tap.Decoder{})
//	decoder, _ := registry.Get("TAP")
package audio
