package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostconf/internal/config"
	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Dump the discovered option schema as JSON",
	Long: `Dump the option schema discovered from the installed ghostty
binary as JSON, grouped by category.

With --settings, instead writes a JSON Schema for ghostconf's own
settings file next to it (for editor completion).`,
	RunE: runSchema,
}

var schemaSettings bool

func init() {
	schemaCmd.Flags().BoolVar(&schemaSettings, "settings", false, "generate the settings file JSON Schema instead")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if schemaSettings {
		if err := config.GenerateSchemaFile(); err != nil {
			return fmt.Errorf("generate settings schema: %w", err)
		}
		return nil
	}

	source, err := discovery.ShowConfig(cmd.Context(), app.Runner)
	if err != nil {
		return fmt.Errorf("discover option schema: %w", err)
	}
	reg, err := schema.Load(source)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reg.ListByCategory())
}
