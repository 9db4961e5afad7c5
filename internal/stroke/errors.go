package stroke

import "errors"

var (
	// ErrDegenerateInput is returned for paths with fewer than two points or
	// with a bounding box of zero width or height.
	ErrDegenerateInput = errors.New("stroke: degenerate input path")
	// ErrEmptyPatternStore is returned by Recognize when no patterns are stored.
	ErrEmptyPatternStore = errors.New("stroke: no patterns available")
	// ErrInvalidConfig reports a recognizer configuration that cannot be used.
	ErrInvalidConfig = errors.New("stroke: invalid recognizer config")
	// ErrInvariant marks an internal logic defect. It is only ever panicked with.
	ErrInvariant = errors.New("stroke: internal invariant violated")
)
