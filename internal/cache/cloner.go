package cache

import (
	"context"
	"io"

	git "github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// GitCloner clones template repositories with go-git.
type GitCloner struct {
	// Depth limits clone history when > 0. The cache is disposable, so
	// a shallow clone is usually enough.
	Depth int

	// Token enables HTTP basic auth for private template repositories.
	Token string

	// Progress receives textual clone progress when non-nil.
	Progress io.Writer
}

// Clone materializes a checkout of url into dir.
func (g *GitCloner) Clone(ctx context.Context, url, dir string) error {
	opts := &git.CloneOptions{
		URL:      url,
		Depth:    g.Depth,
		Progress: g.Progress,
	}
	if g.Token != "" {
		opts.Auth = &githttp.BasicAuth{
			Username: "token", // any non-empty value works for token auth
			Password: g.Token,
		}
	}

	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	return err
}
