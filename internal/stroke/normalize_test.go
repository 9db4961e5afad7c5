package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTo_KeepsAspect(t *testing.T) {
	path := Path{{10, 10}, {60, 10}, {60, 35}, {10, 35}}

	got, err := ScaleTo(path, 100, 100)
	require.NoError(t, err)

	box := got.BoundingBox()
	assert.InDelta(t, 100.0, box.W, 1e-9)
	assert.InDelta(t, 50.0, box.H, 1e-9)
	// Scaling is about the origin.
	assert.InDelta(t, 20.0, got[0].X, 1e-9)
	assert.InDelta(t, 20.0, got[0].Y, 1e-9)
}

func TestNormalize_CentresOnOrigin(t *testing.T) {
	got, err := Normalize(Resample(spiral(90), 64), 100, 100)
	require.NoError(t, err)
	require.Len(t, got, 64)

	c := got.Centroid()
	assert.InDelta(t, 0.0, c.X, 1e-9)
	assert.InDelta(t, 0.0, c.Y, 1e-9)

	box := got.BoundingBox()
	assert.LessOrEqual(t, box.W, 100+1e-9)
	assert.LessOrEqual(t, box.H, 100+1e-9)
	assert.True(t, box.W > 100-1e-9 || box.H > 100-1e-9, "one side must fill the frame")
}

func TestNormalize_NonSquareFrame(t *testing.T) {
	path := Path{{0, 0}, {50, 0}, {50, 25}, {0, 25}}
	got, err := Normalize(path, 200, 40)
	require.NoError(t, err)

	// min(200/50, 40/25) = 1.6
	box := got.BoundingBox()
	assert.InDelta(t, 80.0, box.W, 1e-9)
	assert.InDelta(t, 40.0, box.H, 1e-9)
}

func TestNormalize_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"empty", Path{}},
		{"single point", Path{{4, 4}}},
		{"stationary", Path{{4, 4}, {4, 4}, {4, 4}}},
		{"horizontal", Path{{0, 5}, {10, 5}, {20, 5}}},
		{"vertical", Path{{5, 0}, {5, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.path, 100, 100)
			assert.ErrorIs(t, err, ErrDegenerateInput)
		})
	}
}

func TestScaleTo_NonFinite(t *testing.T) {
	_, err := ScaleTo(Path{{0, 0}, {math.Inf(1), 3}, {5, 5}}, 100, 100)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}
