// SPDX-License-Identifier: EPL-2.0

package tap

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is wrapped by every container framing error.
	ErrFormat = errors.New("invalid TAP container")

	ErrInvalidMarker  = fmt.Errorf("%w: marker is not TAPE-RAW", ErrFormat)
	ErrInvalidVersion = fmt.Errorf("%w: unsupported version", ErrFormat)
	ErrInvalidMachine = fmt.Errorf("%w: unknown machine", ErrFormat)
	ErrInvalidVideo   = fmt.Errorf("%w: unknown video standard", ErrFormat)
	ErrTruncated      = fmt.Errorf("%w: unexpected end of file", ErrFormat)
	ErrTrailingData   = fmt.Errorf("%w: data after declared end", ErrFormat)

	// ErrOutOfRange means the pulse stream was read past its end.
	ErrOutOfRange = errors.New("TAP pulse stream exhausted")

	// ErrUnsupportedFeature is returned for an extended pulse in a version 0 image.
	ErrUnsupportedFeature = errors.New("extended pulse not defined for TAP version 0")
)
