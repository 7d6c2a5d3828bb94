// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// FormatLength renders seconds as minutes and fractional seconds,
// for example 62.5 becomes "1m2.50s".
func FormatLength(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	minutes := int(seconds / 60)
	seconds -= float64(minutes * 60)

	return fmt.Sprintf("%dm%.2fs", minutes, seconds)
}

// SamplesToSeconds converts a frame count at sampleRate into seconds.
func SamplesToSeconds(samples, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}

	return float64(samples) / float64(sampleRate)
}
