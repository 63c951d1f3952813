package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tmpl-labs/tmplsync/internal/template"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate template.json against its schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		result, err := template.ValidateFile(filepath.Join(root, template.FileName))
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", template.FileName)
			return nil
		}

		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s has %d validation issue(s)", template.FileName, len(result.Issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
