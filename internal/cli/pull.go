package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmpl-labs/tmplsync/internal/cache"
	"github.com/tmpl-labs/tmplsync/internal/engine"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Bring template changes down into the project",
	Long: `Refresh the template checkout under ` + cache.DirName + `, merge the configured
JSON files template-into-project, and copy every other non-ignored template
file to its mirrored project path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSync(cmd, engine.CmdPull); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Template changes pulled into the project")
		return nil
	},
}

func init() {
	pullCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Stream clone progress to stderr")
	rootCmd.AddCommand(pullCmd)
}
