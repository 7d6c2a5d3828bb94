// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFormat  = errors.New("invalid PCM format")
	ErrFormatMismatch = errors.New("buffers have different PCM formats")
	ErrSelfAppend     = errors.New("cannot append a buffer onto itself")
)
