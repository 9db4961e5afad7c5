// Package capture is the boundary to whatever records the user's stroke.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
)

var ErrTimeout = errors.New("timed out waiting for stroke")

// Source produces one finished stroke. ok is false when the user cancelled,
// which is not an error.
type Source interface {
	Capture(ctx context.Context) (path stroke.Path, ok bool, err error)
}

// ReaderSource reads a stroke in template text format from R. An input with
// no points counts as a cancellation.
//
// On timeout or context cancellation Capture returns at once but the read is
// abandoned, not stopped: the goroutine parsing R stays blocked until R
// returns, so R should be something the process can afford to leave open.
type ReaderSource struct {
	R       io.Reader
	Timeout time.Duration
}

type readResult struct {
	path stroke.Path
	err  error
}

func (s *ReaderSource) Capture(ctx context.Context) (stroke.Path, bool, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	done := make(chan readResult, 1)
	go func() {
		path, err := gestures.Parse(s.R)
		done <- readResult{path, err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, false, ErrTimeout
		}
		return nil, false, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, false, fmt.Errorf("reading stroke: %w", res.err)
		}
		rec := NewRecorder()
		for _, p := range res.path {
			rec.AddPoint(p.X, p.Y)
		}
		if rec.Len() == 0 {
			return nil, false, nil
		}
		return rec.Path(), true, nil
	}
}
