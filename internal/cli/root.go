package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmpl-labs/tmplsync/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps a project directory in sync with a shared template
repository. "pull" brings template changes into the project; "commit" pushes
project-local changes back into the template checkout. JSON files listed in
template.json are merged field-by-field instead of overwritten wholesale.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
