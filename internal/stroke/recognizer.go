package stroke

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// Config holds the recognizer parameters. Angles are in radians.
type Config struct {
	// AngleRange is the half-width of the rotation search window.
	AngleRange float64
	// AnglePrecision is the bracket width at which the search stops.
	AnglePrecision float64
	// Width and Height describe the reference frame strokes are scaled into.
	Width  float64
	Height float64
	// NumPoints is the resample count.
	NumPoints int
	// Workers bounds how many patterns are scored concurrently. Values below
	// 2 score sequentially.
	Workers int
}

func (c Config) Validate() error {
	switch {
	case c.NumPoints < 2:
		return fmt.Errorf("%w: resample point count %d must be at least 2", ErrInvalidConfig, c.NumPoints)
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: reference size %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.AngleRange >= 0):
		return fmt.Errorf("%w: angle range %g must not be negative", ErrInvalidConfig, c.AngleRange)
	case !(c.AnglePrecision > 0):
		return fmt.Errorf("%w: angle precision %g must be positive", ErrInvalidConfig, c.AnglePrecision)
	}
	return nil
}

// Pattern is a named template. Path is already resampled and normalized.
type Pattern struct {
	Name string
	Path Path
}

// Template is a raw, unnormalized stroke to be stored under Name.
type Template struct {
	Name string
	Path Path
}

// Match is the outcome of scoring an input against one pattern.
type Match struct {
	Pattern    *Pattern
	Distance   float64
	Similarity float64
}

type Recognizer struct {
	cfg      Config
	patterns []*Pattern
}

// New builds a recognizer and adds the given templates in order.
func New(cfg Config, templates ...Template) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Recognizer{cfg: cfg}
	for _, t := range templates {
		if _, err := r.AddPattern(t.Name, t.Path); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", t.Name, err)
		}
	}
	return r, nil
}

func (r *Recognizer) Config() Config {
	return r.cfg
}

func (r *Recognizer) Len() int {
	return len(r.patterns)
}

// Patterns returns the stored patterns in insertion order.
func (r *Recognizer) Patterns() []*Pattern {
	out := make([]*Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Normalize resamples and normalizes path with the recognizer's settings.
func (r *Recognizer) Normalize(path Path) (Path, error) {
	if err := checkFinite(path); err != nil {
		return nil, err
	}
	return Normalize(Resample(path, r.cfg.NumPoints), r.cfg.Width, r.cfg.Height)
}

// AddPattern normalizes path and appends it under name. Names need not be
// unique.
func (r *Recognizer) AddPattern(name string, path Path) (*Pattern, error) {
	normalized, err := r.Normalize(path)
	if err != nil {
		return nil, err
	}
	p := &Pattern{Name: name, Path: normalized}
	r.patterns = append(r.patterns, p)
	return p, nil
}

// Recognize returns the stored pattern closest to path. On equal distances
// the earlier pattern wins. Similarity is 1 at distance 0 and is not clamped
// below.
func (r *Recognizer) Recognize(path Path) (Match, error) {
	scores, err := r.Scores(path)
	if err != nil {
		return Match{}, err
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Distance < scores[best].Distance {
			best = i
		}
	}
	return scores[best], nil
}

// Scores returns a Match for every stored pattern, in store order.
func (r *Recognizer) Scores(path Path) ([]Match, error) {
	if len(r.patterns) == 0 {
		return nil, ErrEmptyPatternStore
	}
	candidate, err := r.Normalize(path)
	if err != nil {
		return nil, err
	}

	distances := make([]float64, len(r.patterns))
	score := func(i int) {
		distances[i] = DistanceAtBestAngle(
			candidate,
			r.patterns[i].Path,
			-r.cfg.AngleRange,
			r.cfg.AngleRange,
			r.cfg.AnglePrecision,
		)
	}

	if r.cfg.Workers > 1 && len(r.patterns) > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, r.cfg.Workers)
		for i := range r.patterns {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				score(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range r.patterns {
			score(i)
		}
	}

	halfDiagonal := 0.5 * math.Hypot(r.cfg.Width, r.cfg.Height)
	logger := Logger()
	matches := make([]Match, len(r.patterns))
	for i, p := range r.patterns {
		matches[i] = Match{
			Pattern:    p,
			Distance:   distances[i],
			Similarity: 1 - distances[i]/halfDiagonal,
		}
		logger.Debug("scored pattern",
			slog.Int("index", i),
			slog.String("name", p.Name),
			slog.Float64("distance", distances[i]),
			slog.Float64("similarity", matches[i].Similarity),
		)
	}
	return matches, nil
}
