package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateBy_AboutCentroid(t *testing.T) {
	path := Path{{1, 2}, {3, 2}}
	got := RotateBy(path, math.Pi/2)

	assert.InDelta(t, 2.0, got[0].X, 1e-12)
	assert.InDelta(t, 1.0, got[0].Y, 1e-12)
	assert.InDelta(t, 2.0, got[1].X, 1e-12)
	assert.InDelta(t, 3.0, got[1].Y, 1e-12)
	assert.Equal(t, Point{1, 2}, path[0])
}

func TestPathDistance(t *testing.T) {
	a := Path{{0, 0}, {1, 1}, {2, 0}}
	b := Path{{3, 4}, {4, 5}, {5, 4}}
	assert.InDelta(t, 5.0, PathDistance(a, b), 1e-12)
	assert.Zero(t, PathDistance(a, a))
	assert.Panics(t, func() { PathDistance(a, b[:2]) })
}

func TestDistanceAtBestAngle_FindsRotation(t *testing.T) {
	template, err := Normalize(Resample(spiral(80), 64), 100, 100)
	require.NoError(t, err)

	for _, deg := range []float64{-8, -3, 0, 2.5, 7} {
		candidate := RotateBy(template, deg*math.Pi/180)
		window := 10 * math.Pi / 180

		naive := PathDistance(candidate, template)
		best := DistanceAtBestAngle(candidate, template, -window, window, 1e-6)
		assert.InDelta(t, 0.0, best, 1e-3, "rotated by %g degrees", deg)
		assert.LessOrEqual(t, best, naive+1e-3)
	}
}

func TestDistanceAtBestAngle_EmptyWindow(t *testing.T) {
	a := Path{{0, 0}, {2, 0}}
	b := Path{{0, 1}, {2, 1}}
	assert.InDelta(t, 1.0, DistanceAtBestAngle(a, b, 0, 0, 0.01), 1e-12)
}
