package wav

import "errors"

var (
	ErrNotWavFile     = errors.New("not a WAV file")
	ErrNotPCM         = errors.New("WAV data is not PCM")
	ErrTooLarge       = errors.New("sample data does not fit a WAV file")
	ErrVerifyMismatch = errors.New("WAV file does not match its buffer")
)
