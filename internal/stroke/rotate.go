package stroke

import (
	"fmt"
	"math"
)

// phi is the golden ratio conjugate.
var phi = 0.5 * (math.Sqrt(5) - 1)

// RotateBy turns every point of path by theta radians about the path centroid.
func RotateBy(path Path, theta float64) Path {
	c := path.Centroid()
	out := make(Path, len(path))
	for i, p := range path {
		out[i] = p.Rotate(c, theta)
	}
	return out
}

// PathDistance is the mean distance between corresponding points of a and b.
// Both paths must have the same length.
func PathDistance(a, b Path) float64 {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: comparing paths of %d and %d points", ErrInvariant, len(a), len(b)))
	}
	if len(a) == 0 {
		return 0
	}
	d := 0.0
	for i := range a {
		d += a[i].Distance(b[i])
	}
	return d / float64(len(a))
}

func DistanceAtAngle(path, template Path, theta float64) float64 {
	return PathDistance(RotateBy(path, theta), template)
}

// DistanceAtBestAngle runs a golden section search for the rotation in [a, b]
// that brings path closest to template, stopping once the bracket is no wider
// than eps. The distance is assumed unimodal over the bracket.
func DistanceAtBestAngle(path, template Path, a, b, eps float64) float64 {
	x1 := phi*a + (1-phi)*b
	f1 := DistanceAtAngle(path, template, x1)
	x2 := (1-phi)*a + phi*b
	f2 := DistanceAtAngle(path, template, x2)

	for math.Abs(b-a) > eps {
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = phi*a + (1-phi)*b
			f1 = DistanceAtAngle(path, template, x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = (1-phi)*a + phi*b
			f2 = DistanceAtAngle(path, template, x2)
		}
	}
	return math.Min(f1, f2)
}
