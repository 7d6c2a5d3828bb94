package tapwav

import "errors"

var (
	ErrNoInputs          = errors.New("no input files")
	ErrUnsupportedFormat = errors.New("no decoder for input format")
	ErrInvalidOptions    = errors.New("invalid options")
)
