package cmd

import (
	"fmt"

	gestures "github.com/ThatOtherAndrew/Hexrune/internal/gesture"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [gesture]",
	Short: "Remove a recorded gesture by name",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return storedNames(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	store, err := gestures.Open()
	if err != nil {
		return err
	}
	if err := store.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
	return nil
}

func storedNames() []string {
	store, err := gestures.Open()
	if err != nil {
		return nil
	}
	names, err := store.List()
	if err != nil {
		return nil
	}
	return names
}
