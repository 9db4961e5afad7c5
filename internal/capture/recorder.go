package capture

import "github.com/ThatOtherAndrew/Hexrune/internal/stroke"

const (
	MaxPoints = 2048
	// MinSpacing is the distance a sample must move from the last kept one.
	MinSpacing = 2.0
)

// Recorder accumulates pointer samples into a stroke, dropping jitter and
// keeping only the most recent MaxPoints samples.
type Recorder struct {
	points stroke.Path
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// AddPoint appends a sample and reports whether it was kept.
func (r *Recorder) AddPoint(x, y float64) bool {
	newPoint := stroke.Point{X: x, Y: y}

	if len(r.points) > 0 {
		lastPoint := r.points[len(r.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		if dx*dx+dy*dy <= MinSpacing*MinSpacing {
			return false
		}
	}

	r.points = append(r.points, newPoint)
	if len(r.points) > MaxPoints {
		r.points = r.points[len(r.points)-MaxPoints:]
	}
	return true
}

func (r *Recorder) Len() int {
	return len(r.points)
}

// Path returns a copy of the recorded stroke.
func (r *Recorder) Path() stroke.Path {
	return r.points.Clone()
}

func (r *Recorder) Reset() {
	r.points = nil
}
