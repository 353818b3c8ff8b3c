package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "kpool",
		Short: "CLI tool for the Kelly Pool tracker API",
		Long: `kpool is a CLI tool for running Kelly Pool games on a tracker server.

Create a table, seat players, start the game to deal the secret balls, then
record each ball as it is pocketed. The current table is remembered between
commands.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Load table from file if not provided via flag/env
			if err := cfg.LoadTable(); err != nil {
				return err
			}

			level := log.WarnLevel
			if cfg.Verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Level: level, Prefix: "kpool"})

			client = NewClient(cfg.ServerURL, logger)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: KPOOL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Table, "table", cfg.Table, "Table ID (env: KPOOL_TABLE)")
	rootCmd.PersistentFlags().StringVar(&cfg.TableFile, "table-file", cfg.TableFile, "File remembering the current table (env: KPOOL_TABLE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := "text"
		if cfg != nil {
			format = cfg.Output
		}
		NewOutput(format, os.Stdout, os.Stderr).PrintError(err)
		os.Exit(1)
	}
}

// newOutput creates an Output bound to the command's writers
func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
