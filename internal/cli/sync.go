package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmpl-labs/tmplsync/internal/cache"
	"github.com/tmpl-labs/tmplsync/internal/config"
	"github.com/tmpl-labs/tmplsync/internal/engine"
)

// syncVerbose streams clone progress to stderr. Shared by the commit
// and pull commands.
var syncVerbose bool

// runSync executes a sync of the current working directory in the
// given direction, with the cloner configured from user settings.
func runSync(cmd *cobra.Command, direction string) error {
	config.Load()

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	cloner := &cache.GitCloner{
		Depth: config.GetInt(config.KeyCloneDepth),
		Token: config.Get(config.KeyAuthToken),
	}
	if syncVerbose {
		cloner.Progress = cmd.ErrOrStderr()
	}

	return engine.New(cloner, buildVersion).Run(cmd.Context(), root, direction)
}
