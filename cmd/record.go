package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/Hexrune/internal/config"
	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/ThatOtherAndrew/Hexrune/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	recordCapture captureFlags
	recordName    string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a stroke as a named gesture",
	Args:  cobra.NoArgs,
	RunE:  record,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCapture.register(recordCmd)
	recordCmd.Flags().StringVarP(&recordName, "name", "n", "", "name to store the gesture under")
	_ = recordCmd.MarkFlagRequired("name")
}

func record(cmd *cobra.Command, args []string) error {
	if err := gestures.ValidateName(recordName); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, ok, err := recordCapture.capture(cmd)
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

	// Refuse strokes the recognizer could never match against.
	recognizer, err := stroke.New(cfg.Engine())
	if err != nil {
		return err
	}
	if _, err := recognizer.AddPattern(recordName, path); err != nil {
		if errors.Is(err, stroke.ErrDegenerateInput) {
			return fmt.Errorf("gesture too small to record: %w", err)
		}
		return err
	}

	store, err := gestures.Open()
	if err != nil {
		return err
	}
	if err := store.Save(recordName, path); err != nil {
		return fmt.Errorf("failed to save gesture: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved gesture %s (%d points)\n", recordName, len(path))

	if _, bound := cfg.CommandFor(recordName); !bound {
		log.Printf("Note: no command is bound to '%s' yet, add it under commands: in the config", recordName)
	}
	return nil
}
