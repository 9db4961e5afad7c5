// Package draw renders strokes to PNG previews.
package draw

import (
	"fmt"
	"io"
	"math"

	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/gogpu/gg"
)

type Options struct {
	Width, Height int
	// Padding is kept clear on every side of the canvas.
	Padding float64
}

func DefaultOptions() Options {
	return Options{Width: 256, Height: 256, Padding: 24}
}

// Fit maps path into a width x height canvas with padding on every side,
// keeping its aspect ratio and centring it.
func Fit(path stroke.Path, width, height int, padding float64) stroke.Path {
	box := path.BoundingBox()
	availW := float64(width) - 2*padding
	availH := float64(height) - 2*padding

	s := math.Inf(1)
	if box.W > 0 {
		s = availW / box.W
	}
	if box.H > 0 {
		s = math.Min(s, availH/box.H)
	}
	if math.IsInf(s, 1) {
		s = 1
	}

	offset := stroke.Point{
		X: float64(width)/2 - (box.X+box.W/2)*s,
		Y: float64(height)/2 - (box.Y+box.H/2)*s,
	}
	out := make(stroke.Path, len(path))
	for i, p := range path {
		out[i] = p.Scale(s).Add(offset)
	}
	return out
}

// Render draws path onto a white canvas and writes it as PNG. The stroke
// fades in from its first point, which is also marked with a dot.
func Render(w io.Writer, path stroke.Path, opts Options) error {
	if len(path) < 2 {
		return fmt.Errorf("%w: cannot render %d point(s)", stroke.ErrDegenerateInput, len(path))
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	points := Fit(path, opts.Width, opts.Height, opts.Padding)

	// Widest, faintest pass first so the core line sits on top.
	for pass := 2; pass >= 0; pass-- {
		thickness := float64(3 + pass*3)
		baseAlpha := 0.9 - float64(pass)*0.3
		if err := drawLine(dc, points, thickness, baseAlpha); err != nil {
			return err
		}
	}

	dc.SetRGB(0.85, 0.2, 0.35)
	dc.DrawCircle(points[0].X, points[0].Y, 5)
	if err := dc.Fill(); err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

func drawLine(dc *gg.Context, points stroke.Path, thickness, baseAlpha float64) error {
	dc.SetLineWidth(thickness)
	last := float64(len(points) - 1)
	for i := 1; i < len(points); i++ {
		fade := 0.35 + 0.65*float64(i)/last
		dc.SetRGBA(0.3, 0.25, 0.9, baseAlpha*fade)
		dc.MoveTo(points[i-1].X, points[i-1].Y)
		dc.LineTo(points[i].X, points[i].Y)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
