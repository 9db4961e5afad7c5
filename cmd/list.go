package cmd

import (
	"fmt"

	"github.com/ThatOtherAndrew/Hexrune/internal/config"
	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	store, err := gestures.Open()
	if err != nil {
		return err
	}
	names, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, name := range names {
		if command, ok := cfg.CommandFor(name); ok {
			fmt.Fprintf(out, "   %s -> %s\n", name, command)
		} else {
			fmt.Fprintf(out, "   %s (unbound)\n", name)
		}
	}
	return nil
}
