package cmd

import (
	"fmt"
	"os"

	"github.com/ThatOtherAndrew/Hexrune/internal/config"
	"github.com/ThatOtherAndrew/Hexrune/internal/draw"
	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	renderOutput     string
	renderNormalized bool
	renderSize       int
)

var renderCmd = &cobra.Command{
	Use:   "render [gesture]",
	Short: "Render a recorded gesture to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  renderGesture,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return storedNames(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "PNG file to write")
	renderCmd.Flags().BoolVar(&renderNormalized, "normalized", false, "render the resampled, normalized template")
	renderCmd.Flags().IntVar(&renderSize, "size", 256, "canvas width and height in pixels")
	_ = renderCmd.MarkFlagRequired("output")
}

func renderGesture(cmd *cobra.Command, args []string) error {
	store, err := gestures.Open()
	if err != nil {
		return err
	}
	path, err := store.Load(args[0])
	if err != nil {
		return err
	}

	if renderNormalized {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		recognizer, err := stroke.New(cfg.Engine())
		if err != nil {
			return err
		}
		if path, err = recognizer.Normalize(path); err != nil {
			return err
		}
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return err
	}
	opts := draw.DefaultOptions()
	opts.Width, opts.Height = renderSize, renderSize
	if err := draw.Render(f, path, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", renderOutput)
	return nil
}
