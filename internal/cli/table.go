package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table commands",
	}

	cmd.AddCommand(newTableCreateCmd())
	cmd.AddCommand(newTableListCmd())
	cmd.AddCommand(newTableGetCmd())
	cmd.AddCommand(newTableDeleteCmd())
	cmd.AddCommand(newTableHistoryCmd())

	return cmd
}

func newTableCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Open a new table and make it the current table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Table

			if err := client.Post("/api/v1/tables", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveTable(result.ID); err != nil {
				return fmt.Errorf("failed to save table: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newTableListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TableList

			if err := client.Get("/api/v1/tables", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newTableGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a table (defaults to the current table)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveTable(args)
			if err != nil {
				return err
			}

			var result Table

			if err := client.Get(tablePath(id), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newTableDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Close a table (defaults to the current table)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveTable(args)
			if err != nil {
				return err
			}

			if err := client.Delete(tablePath(id), nil); err != nil {
				return err
			}

			if err := cfg.ForgetTable(id); err != nil {
				return fmt.Errorf("failed to clear table file: %w", err)
			}

			newOutput(cmd).PrintMessage(fmt.Sprintf("Deleted table %s", id))
			return nil
		},
	}
}

func newTableHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [id]",
		Short: "Show the event history of a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cfg.ResolveTable(args)
			if err != nil {
				return err
			}

			var result History

			if err := client.Get(tablePath(id, "history"), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
