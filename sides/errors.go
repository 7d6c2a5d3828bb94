// SPDX-License-Identifier: EPL-2.0

package sides

import (
	"errors"
	"fmt"
)

var (
	// ErrPacking is wrapped by every packing failure. Packing failures
	// concern the run as a whole, not a single input.
	ErrPacking = errors.New("cannot pack inputs into sides")

	ErrInputTooLong   = fmt.Errorf("%w: input does not fit on one side", ErrPacking)
	ErrFormatMismatch = fmt.Errorf("%w: inputs have different PCM formats", ErrPacking)
	ErrInvalidLimit   = fmt.Errorf("%w: side length must be positive", ErrPacking)
)
