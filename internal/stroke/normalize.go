package stroke

import (
	"fmt"
	"math"
)

// minExtent is the smallest bounding box side that can be scaled.
const minExtent = 1e-9

// ScaleTo scales path uniformly so that its bounding box fits a width x height
// box with the aspect ratio kept. Scaling is about the origin, not the box.
func ScaleTo(path Path, width, height float64) (Path, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: %d point(s)", ErrDegenerateInput, len(path))
	}
	if err := checkFinite(path); err != nil {
		return nil, err
	}

	box := path.BoundingBox()
	if box.W < minExtent || box.H < minExtent {
		return nil, fmt.Errorf("%w: bounding box %gx%g", ErrDegenerateInput, box.W, box.H)
	}

	s := math.Min(width/box.W, height/box.H)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: scale factor %g", ErrDegenerateInput, s)
	}

	out := make(Path, len(path))
	for i, p := range path {
		out[i] = p.Scale(s)
	}
	return out, nil
}

// TranslateTo moves path so its centroid lands on k.
func TranslateTo(path Path, k Point) Path {
	offset := k.Sub(path.Centroid())
	out := make(Path, len(path))
	for i, p := range path {
		out[i] = p.Add(offset)
	}
	return out
}

// Normalize scales an already resampled path to the reference frame and
// centres it on the origin.
func Normalize(path Path, width, height float64) (Path, error) {
	scaled, err := ScaleTo(path, width, height)
	if err != nil {
		return nil, err
	}
	return TranslateTo(scaled, Point{}), nil
}

func checkFinite(path Path) error {
	for i, p := range path {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d is not finite", ErrDegenerateInput, i)
		}
	}
	return nil
}
