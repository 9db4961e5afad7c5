package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Hexrune/internal/config"
	"github.com/ThatOtherAndrew/Hexrune/internal/execute"
	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	recognizeCapture captureFlags
	dryRun           bool
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize",
	Short: "Recognise a stroke and run its command",
	Args:  cobra.NoArgs,
	RunE:  recognize,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	recognizeCapture.register(recognizeCmd)
	recognizeCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report the match without running the command")
}

func recognize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, ok, err := recognizeCapture.capture(cmd)
	if err != nil {
		return err
	}
	if !ok {
		log.Println("Gesture cancelled")
		return nil
	}
	if len(path) < cfg.Recognizer.PointCountThreshold {
		return fmt.Errorf("too few points: got %d, need %d", len(path), cfg.Recognizer.PointCountThreshold)
	}

	store, err := gestures.Open()
	if err != nil {
		return err
	}
	templates, err := store.LoadAll(cfg.PatternNames())
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}
	if len(templates) == 0 {
		return errors.New("no patterns configured")
	}

	recognizer, err := stroke.New(cfg.Engine(), templates...)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d gesture(s)", recognizer.Len())

	match, err := recognizer.Recognize(path)
	if err != nil {
		if errors.Is(err, stroke.ErrDegenerateInput) {
			return fmt.Errorf("gesture too small to recognise: %w", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recognized as %s (%.3f)\n", match.Pattern.Name, match.Similarity)

	if match.Similarity <= cfg.Recognizer.CommandExecuteThreshold {
		log.Printf("No confident match (best score: %.3f)", match.Similarity)
		return nil
	}

	command, _ := cfg.CommandFor(match.Pattern.Name)
	if dryRun {
		log.Printf("Would execute: %s", command)
		return nil
	}
	if err := execute.Command(command); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	log.Printf("Executed: %s", command)
	return nil
}
