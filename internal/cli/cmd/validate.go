package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ghostconf/internal/cli/styles"
	"github.com/bnema/ghostconf/internal/discovery"
	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/schema"
	"github.com/bnema/ghostconf/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a Ghostty config file",
	Long: `Validate a Ghostty config file against the option schema.

Without an argument, validates your live config file. Exits non-zero
when the file contains errors; warnings alone do not fail the run.

Examples:
  ghostconf validate
  ghostconf validate ~/dotfiles/ghostty/config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := app.ConfigPath
	if len(args) == 1 {
		path = args[0]
	}

	source, err := discovery.ShowConfig(cmd.Context(), app.Runner)
	if err != nil {
		return fmt.Errorf("discover option schema: %w", err)
	}
	reg, err := schema.Load(source)
	if err != nil {
		return err
	}

	doc, err := document.ReadFile(path)
	if err != nil {
		return err
	}

	issues := validate.Check(doc, reg)
	theme := styles.NewTheme()

	if len(issues) == 0 {
		fmt.Println(theme.SuccessStyle.Render("✓ no issues found"))
		return nil
	}

	for _, is := range issues {
		badge := theme.SeverityBadge(string(is.Severity))
		loc := theme.Subtle.Render(fmt.Sprintf("line %d", is.Line+1))
		fmt.Printf("%s %s %s %s\n", badge, loc, theme.Key.Render(is.Key), is.Message)
	}
	fmt.Println()

	if validate.HasErrors(issues) {
		fmt.Println(theme.ErrorStyle.Render("✗ config has errors"))
		return fmt.Errorf("%d issue(s) found", len(issues))
	}
	fmt.Println(theme.WarningStyle.Render("config has warnings only"))
	return nil
}
