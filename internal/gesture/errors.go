package gestures

import "errors"

var (
	ErrNotFound    = errors.New("gesture not found")
	ErrInvalidName = errors.New("invalid gesture name")
	ErrMalformed   = errors.New("malformed gesture file")
)
