// Package cmd provides Cobra CLI commands for ghostconf.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostconf/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "ghostconf",
		Short: "A local web editor for the Ghostty terminal config",
		Long: `Ghostconf - edit your Ghostty terminal configuration from the browser.

Serves a local web UI backed by the real config file on disk. Edits are
validated against the option schema discovered from the installed ghostty
binary, and saved without disturbing comments, ordering, or unknown keys.

Use 'ghostconf serve' to start the editor, or explore the subcommands
for CLI-based operations like validation and export.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

// SetVersion sets the build information (called from main before Execute).
func SetVersion(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
