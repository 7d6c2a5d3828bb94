// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const microsPerSecond = 1_000_000.0

// PulseMicros converts a raw pulse counter into microseconds for a clock of
// frequency Hz. Half a counter unit is added before scaling to compensate
// for the counter quantization of the tape hardware.
func PulseMicros(count uint32, frequency uint32) uint32 {
	return uint32(math.Round((float64(count) + 0.5) * microsPerSecond / float64(frequency)))
}

// MicrosPerSample returns the duration of a single sample at sampleRate.
func MicrosPerSample(sampleRate int) float64 {
	return microsPerSecond / float64(sampleRate)
}

// HalfCycleSamples returns how many samples each half of a square wave with
// the given period occupies. The half period is truncated to whole
// microseconds first, and the sample count is floored.
func HalfCycleSamples(period uint32, microsPerSample float64) int {
	half := period / 2

	return int(math.Floor(float64(half) / microsPerSample))
}
