package cmd

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
recognizer:
  command_execute_threshold: 0.8
commands:
  - pattern: up
    command: echo up
  - pattern: down
    command: echo down
`

type result struct {
	out string
	log string
	err error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	resetFlags(t, rootCmd)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	err := rootCmd.Execute()
	return result{out: out.String(), log: logs.String(), err: err}
}

// resetFlags puts every flag back to its default, since the command tree and
// its flag variables are shared by all tests.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue), "flag --%s", f.Name)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	cfg := filepath.Join(dir, "config", "hexrune", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0755))
	require.NoError(t, os.WriteFile(cfg, []byte(testConfig), 0644))
	return dir
}

func polyline(corners ...stroke.Point) stroke.Path {
	var p stroke.Path
	for i := 1; i < len(corners); i++ {
		for k := 0; k < 20; k++ {
			p = append(p, corners[i-1].Lerp(corners[i], float64(k)/20))
		}
	}
	return append(p, corners[len(corners)-1])
}

func encode(t *testing.T, path stroke.Path) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gestures.Encode(&buf, path))
	return buf.String()
}

var (
	caretUp   = polyline(stroke.Point{X: 0, Y: 100}, stroke.Point{X: 50, Y: 0}, stroke.Point{X: 100, Y: 100})
	caretDown = polyline(stroke.Point{X: 0, Y: 0}, stroke.Point{X: 50, Y: 100}, stroke.Point{X: 100, Y: 0})
)

func TestRecordListRecognize(t *testing.T) {
	setupEnv(t)

	res := run(t, encode(t, caretUp), "record", "--name", "up")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Saved gesture up (41 points)")

	res = run(t, encode(t, caretDown), "record", "--name", "down")
	require.NoError(t, res.err)

	res = run(t, "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "down -> echo down")
	assert.Contains(t, res.out, "up -> echo up")

	input := stroke.RotateBy(caretUp, 5*math.Pi/180)
	for i, p := range input {
		input[i] = p.Scale(1.7).Add(stroke.Point{X: 400, Y: 300})
	}
	res = run(t, encode(t, input), "recognize", "--dry-run")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "recognized as up")
	assert.Contains(t, res.log, "Would execute: echo up")
}

func TestRecognize_Cancelled(t *testing.T) {
	setupEnv(t)

	res := run(t, "", "recognize", "--dry-run")
	require.NoError(t, res.err)
	assert.Contains(t, res.log, "Gesture cancelled")
	assert.Empty(t, res.out)
}

func TestRecognize_TooFewPoints(t *testing.T) {
	setupEnv(t)

	res := run(t, "0 0\n10 10\n20 0\n", "recognize", "--dry-run")
	assert.ErrorContains(t, res.err, "too few points")
}

func TestRecognize_NoPatterns(t *testing.T) {
	setupEnv(t)

	res := run(t, encode(t, caretUp), "recognize", "--dry-run")
	assert.ErrorContains(t, res.err, "no patterns configured")
}

func TestRecord_Degenerate(t *testing.T) {
	setupEnv(t)

	flat := polyline(stroke.Point{X: 0, Y: 50}, stroke.Point{X: 200, Y: 50})
	res := run(t, encode(t, flat), "record", "--name", "flat")
	assert.ErrorIs(t, res.err, stroke.ErrDegenerateInput)

	res = run(t, encode(t, caretUp), "record", "--name", "../escape")
	assert.ErrorIs(t, res.err, gestures.ErrInvalidName)
}

func TestRemove(t *testing.T) {
	setupEnv(t)
	require.NoError(t, run(t, encode(t, caretUp), "record", "--name", "up").err)

	res := run(t, "", "remove", "up")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Removed gesture: up")

	res = run(t, "", "remove", "up")
	assert.ErrorIs(t, res.err, gestures.ErrNotFound)

	res = run(t, "", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "No gestures registered")
}

func TestRender(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, run(t, encode(t, caretDown), "record", "--name", "down").err)

	out := filepath.Join(dir, "down.png")
	res := run(t, "", "render", "down", "--output", out, "--normalized", "--size", "64")
	require.NoError(t, res.err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	setupEnv(t)

	res := run(t, encode(t, caretUp), "record", "--name", "up")
	require.NoError(t, res.err)

	res = run(t, encode(t, caretUp), "record")
	assert.ErrorContains(t, res.err, `required flag(s) "name" not set`)
	assert.Empty(t, recordName)

	res = run(t, "", "recognize", "--dry-run")
	require.NoError(t, res.err)
	assert.True(t, dryRun)
	run(t, "", "list")
	assert.False(t, dryRun)
}
