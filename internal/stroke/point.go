package stroke

import "math"

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the point at fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
	}
}

// Rotate turns p by theta radians about c.
func (p Point) Rotate(c Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: dx*cos - dy*sin + c.X,
		Y: dx*sin + dy*cos + c.Y,
	}
}

// Path is a stroke in drawing order.
type Path []Point

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Length is the sum of the distances between consecutive points.
func (p Path) Length() float64 {
	d := 0.0
	for i := 1; i < len(p); i++ {
		d += p[i-1].Distance(p[i])
	}
	return d
}

func (p Path) Centroid() Point {
	var c Point
	if len(p) == 0 {
		return c
	}
	for _, q := range p {
		c.X += q.X
		c.Y += q.Y
	}
	n := float64(len(p))
	return Point{X: c.X / n, Y: c.Y / n}
}

type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Diagonal() float64 {
	return math.Hypot(r.W, r.H)
}

// BoundingBox returns the axis-aligned box enclosing every point.
// An empty path yields the zero Rect.
func (p Path) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, q := range p[1:] {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
