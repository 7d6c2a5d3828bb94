// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/ik5/tapwav/utils"
)

// DefaultThreshold is the smallest half-cycle sample count considered
// faithful enough for a datasette to read back.
const DefaultThreshold = 12

// Synthesizer renders pulse periods as a two level square wave.
//
// Every period produces one high half-cycle followed by one low half-cycle
// of floor((period/2) / MicrosPerSample) frames each. Half-cycles shorter
// than Threshold frames are still written, since dropping them would shift
// every following pulse; the first one seen per source is reported through
// OnLowSampleCount so the caller may retry at a higher sample rate.
type Synthesizer struct {
	Format    Format
	Threshold int

	// OnLowSampleCount is called at most once per Synthesize call.
	OnLowSampleCount func(samples int)
}

func NewSynthesizer(format Format) *Synthesizer {
	return &Synthesizer{
		Format:    format,
		Threshold: DefaultThreshold,
	}
}

// Synthesize drains src into a new Buffer and then appends spacing worth of
// silence.
func (s *Synthesizer) Synthesize(src PeriodSource, spacing time.Duration) (*Buffer, error) {
	if err := s.Format.Validate(); err != nil {
		return nil, err
	}

	buf := NewBuffer(s.Format)
	usPerSample := s.Format.MicrosPerSample()
	warned := false

	for src.HasMorePeriods() {
		period, err := src.NextPeriod()
		if err != nil {
			return nil, fmt.Errorf("period at frame %d: %w", buf.Len(), err)
		}

		n := utils.HalfCycleSamples(period, usPerSample)

		if !warned && n < s.Threshold {
			warned = true
			if s.OnLowSampleCount != nil {
				s.OnLowSampleCount(n)
			}
		}

		buf.AddLevel(High, n)
		buf.AddLevel(Low, n)
	}

	buf.AddSilence(spacing)

	return buf, nil
}
