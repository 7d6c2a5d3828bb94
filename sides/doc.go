// SPDX-License-Identifier: EPL-2.0

// Package sides packs rendered tapes onto cassette sides of bounded length.
//
//	sides.SortByLength(tapes)
//	out, err := sides.Pack(tapes, 30*time.Minute)
//	if errors.Is(err, sides.ErrInputTooLong) {
//	    // a single tape is longer than a side; nothing was packed
//	}
//
// Each returned side is an audio.Buffer whose index lists the tapes it
// holds, in playing order.
package sides
