package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// maxNameLength mirrors the server's limit so typos fail before a round trip
const maxNameLength = 20

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Seat a player at the current table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveTable(nil)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if utf8.RuneCountInString(name) > maxNameLength {
				return fmt.Errorf("name must be at most %d characters", maxNameLength)
			}

			var result CommandResult

			body := map[string]string{"name": name}
			if err := client.Post(tablePath(id, "players"), body, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the current table before the game starts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveTable(nil)
			if err != nil {
				return err
			}

			var result CommandResult

			if err := client.Delete(tablePath(id, "players", args[0]), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
