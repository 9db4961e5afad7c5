package gestures

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
)

// Parse reads a stroke stored one point per line as "x y". Blank lines are
// skipped.
func Parse(r io.Reader) (stroke.Path, error) {
	var path stroke.Path
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected 2 fields, got %d", ErrMalformed, line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		if !finite(x) || !finite(y) {
			return nil, fmt.Errorf("%w: line %d: coordinates must be finite", ErrMalformed, line)
		}
		path = append(path, stroke.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return path, nil
}

// Encode writes path in the format read by Parse.
func Encode(w io.Writer, path stroke.Path) error {
	bw := bufio.NewWriter(w)
	for i, p := range path {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		bw.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return bw.Flush()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
