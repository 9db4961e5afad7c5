package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ThatOtherAndrew/Hexrune/internal/capture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hexrune",
	Short: "Draw a rune, run a command",
	Long: `hexrune matches a drawn pointer stroke against recorded gestures and
runs the shell command bound to the closest one.

Strokes are read one point per line as "x y" from --input or stdin.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default $XDG_CONFIG_HOME/hexrune/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-pattern scores")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)
	if verbose {
		stroke.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		stroke.SetLogger(nil)
	}
	return nil
}

type captureFlags struct {
	input   string
	timeout time.Duration
}

func (f *captureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read the stroke from this file instead of stdin")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "give up waiting for a stroke after this long (0 waits forever)")
}

func (f *captureFlags) capture(cmd *cobra.Command) (stroke.Path, bool, error) {
	src := &capture.ReaderSource{R: cmd.InOrStdin(), Timeout: f.timeout}
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, false, err
		}
		defer file.Close()
		src.R = file
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return src.Capture(ctx)
}
