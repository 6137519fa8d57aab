package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostconf/internal/document"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Print the config file exactly as stored",
	Long: `Print a Ghostty config file to stdout.

The output is the same bytes a save would write: comments, blank lines,
and key ordering are preserved.

Examples:
  ghostconf export
  ghostconf export > backup-config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := app.ConfigPath
	if len(args) == 1 {
		path = args[0]
	}

	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(document.Serialize(doc)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
