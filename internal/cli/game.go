package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGamePocketCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

// postCommand sends a game command for the current table and prints the result
func postCommand(cmd *cobra.Command, action string, body any) error {
	id, err := cfg.ResolveTable(nil)
	if err != nil {
		return err
	}

	var result CommandResult

	if err := client.Post(tablePath(id, action), body, &result); err != nil {
		return err
	}

	newOutput(cmd).Print(result)
	return nil
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Deal the balls and start the game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postCommand(cmd, "start", nil)
		},
	}
}

func newGamePocketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pocket <ball>",
		Short: "Record a pocketed ball (1-15)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ball, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("ball must be a number, got %q", args[0])
			}

			return postCommand(cmd, "pocket", map[string]int{"ball": ball})
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the table for a new game with the same players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postCommand(cmd, "reset", nil)
		},
	}
}
