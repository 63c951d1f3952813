package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmpl-labs/tmplsync/internal/cache"
	"github.com/tmpl-labs/tmplsync/internal/engine"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Push project-local changes into the template checkout",
	Long: `Refresh the template checkout under ` + cache.DirName + `, merge the configured
JSON files project-into-template, and copy every other non-ignored project
file to its mirrored template path. Push the checkout with your usual git
workflow afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSync(cmd, engine.CmdCommit); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Project changes committed into %s\n", cache.DirName)
		return nil
	},
}

func init() {
	commitCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Stream clone progress to stderr")
	rootCmd.AddCommand(commitCmd)
}
