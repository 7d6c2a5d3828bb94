// SPDX-License-Identifier: EPL-2.0

package sides

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
	"time"

	"github.com/ik5/tapwav/audio"
)

// Pack distributes inputs over as many sides as needed so that every side
// plays for strictly less than limit.
//
// Placement is greedy first-fit with restart: the remaining inputs are
// scanned in order and the first one that still fits on the current side is
// moved onto it, after which the scan starts again from the top. When no
// remaining input fits the side is closed and a new one is opened. The
// result depends on the order of inputs; SortByLength gives the usual
// longest-first heuristic.
//
// Inputs are moved, not copied: every input buffer is empty once Pack
// returns successfully. On error no input is modified.
func Pack(inputs []*audio.Buffer, limit time.Duration) ([]*audio.Buffer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLimit, limit)
	}

	if len(inputs) == 0 {
		return nil, nil
	}

	format := inputs[0].Format()
	fits := func(frames int) bool {
		return lessProduct(uint64(frames), uint64(time.Second), uint64(limit), uint64(format.SampleRate))
	}

	for _, in := range inputs {
		if in.Format() != format {
			return nil, fmt.Errorf("%w: %s is %+v, want %+v", ErrFormatMismatch, sourceName(in), in.Format(), format)
		}

		// an input that cannot go on an empty side would never be placed
		if !fits(in.Len()) {
			return nil, fmt.Errorf("%w: %s plays %v, side holds less than %v",
				ErrInputTooLong, sourceName(in), in.Duration(), limit)
		}
	}

	pool := slices.Clone(inputs)
	side := audio.NewBuffer(format)
	var sides []*audio.Buffer

	for len(pool) > 0 {
		placed := false

		for i, in := range pool {
			if !fits(side.Len() + in.Len()) {
				continue
			}

			if err := side.Append(in); err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			pool = slices.Delete(pool, i, i+1)
			placed = true

			break
		}

		if !placed {
			sides = append(sides, side)
			side = audio.NewBuffer(format)
		}
	}

	return append(sides, side), nil
}

// SortByLength orders inputs longest first. Inputs of equal length keep
// their relative order.
func SortByLength(inputs []*audio.Buffer) {
	slices.SortStableFunc(inputs, func(a, b *audio.Buffer) int {
		return cmp.Compare(b.Len(), a.Len())
	})
}

// lessProduct reports whether a*b < c*d without overflowing.
func lessProduct(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)

	return hi1 < hi2 || (hi1 == hi2 && lo1 < lo2)
}

func sourceName(b *audio.Buffer) string {
	idx := b.Index()
	if len(idx) == 0 {
		return "unlabeled input"
	}

	return idx[0].Source
}
