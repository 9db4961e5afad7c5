// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import "fmt"

// Resample returns n points spaced at equal arc length along path. The first
// and last points of a non-empty path are preserved. An empty path resamples
// to an empty path, and a path of zero length to n copies of its first point.
//
// Resample panics if n < 2.
func Resample(path Path, n int) Path {
	if n < 2 {
		panic(fmt.Errorf("%w: resample count %d < 2", ErrInvariant, n))
	}
	if len(path) == 0 {
		return Path{}
	}

	out := make(Path, 1, n)
	out[0] = path[0]

	interval := path.Length() / float64(n-1)
	if interval == 0 {
		for len(out) < n {
			out = append(out, path[0])
		}
		return out
	}

	// acc is the arc length walked since the last emitted point.
	acc := 0.0
	for i := 1; i < len(path) && len(out) < n; i++ {
		prev, cur := path[i-1], path[i]
		d := prev.Distance(cur)
		if d == 0 {
			continue
		}

		next := interval - acc
		for next <= d && len(out) < n {
			out = append(out, prev.Lerp(cur, next/d))
			next += interval
		}
		acc = d - (next - interval)
	}

	// Floating point division can leave the final tick just past the end.
	if len(out) == n-1 {
		out = append(out, path[len(path)-1])
	}

	if len(out) != n {
		panic(fmt.Errorf("%w: resampled %d points, want %d", ErrInvariant, len(out), n))
	}
	return out
}
