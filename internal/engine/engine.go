package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tmpl-labs/tmplsync/internal/cache"
	"github.com/tmpl-labs/tmplsync/internal/jsonmerge"
	"github.com/tmpl-labs/tmplsync/internal/template"
	"github.com/tmpl-labs/tmplsync/internal/walker"
)

// Sync directions.
const (
	// CmdCommit pushes project-local changes into the template cache.
	CmdCommit = "commit"
	// CmdPull brings template changes down into the project.
	CmdPull = "pull"
)

// ErrUnsupportedCommand indicates a direction other than commit/pull.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Engine runs sync operations for a project.
type Engine struct {
	cache   *cache.Cache
	version string
}

// New returns an Engine that refreshes template checkouts through the
// given Cloner. version is the build version checked against the
// template's optional requires constraint.
func New(cloner cache.Cloner, version string) *Engine {
	return &Engine{
		cache:   cache.New(cloner),
		version: version,
	}
}

// Run performs a full sync of the project at root in the given
// direction. Configuration and clone failures abort before any file is
// touched; the command itself is validated only after the cache
// refresh, so an unknown command still re-clones the cache before
// being rejected. The cache is disposable, so the extra clone is
// harmless, and keeping the check late means commit and pull share the
// whole setup path.
//
// Concurrent Runs against the same project root are unsupported: both
// would rebuild the same cache directory.
func (e *Engine) Run(ctx context.Context, root, cmd string) error {
	cfg, err := template.Load(root, e.version)
	if err != nil {
		return err
	}

	if err := e.cache.Refresh(ctx, cfg.Source, root); err != nil {
		return err
	}

	switch cmd {
	case CmdCommit, CmdPull:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrUnsupportedCommand, cmd, CmdCommit, CmdPull)
	}

	if err := mergeJSONFiles(ctx, cfg, root, cmd); err != nil {
		return err
	}
	return copyTree(ctx, cfg, root, cmd)
}

// mergeJSONFiles runs the directional merge for every configured JSON
// file pair. Pairs are independent and merge concurrently; any failure
// fails the step.
func mergeJSONFiles(ctx context.Context, cfg *template.Config, root, cmd string) error {
	g, _ := errgroup.WithContext(ctx)

	for _, spec := range cfg.JSON {
		spec := spec
		projectPath := filepath.Join(root, spec.Name)
		templatePath := filepath.Join(cache.Dir(root), spec.Name)

		g.Go(func() error {
			if cmd == CmdCommit {
				return jsonmerge.MergeFiles(templatePath, projectPath, spec.IgnoreKeys)
			}
			return jsonmerge.MergeFiles(projectPath, templatePath, spec.IgnoreKeys)
		})
	}
	return g.Wait()
}

// copyTree enumerates the source side of the sync and copies every
// non-ignored file to its mirrored path, creating parent directories
// as needed. Copies are independent and run concurrently.
func copyTree(ctx context.Context, cfg *template.Config, root, cmd string) error {
	walkRoot := root
	if cmd == CmdPull {
		walkRoot = cache.Dir(root)
	}

	files, err := walker.Walk(ctx, walkRoot, cfg.Ignore)
	if err != nil {
		return fmt.Errorf("enumerating %s: %w", walkRoot, err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	g, _ := errgroup.WithContext(ctx)

	for _, src := range files {
		src := src
		g.Go(func() error {
			var dst string
			var err error
			if cmd == CmdCommit {
				dst, err = cache.TemplatePath(src, absRoot)
			} else {
				dst, err = cache.ProjectPath(src, absRoot)
			}
			if err != nil {
				return err
			}

			if err := EnsureDir(filepath.Dir(dst)); err != nil {
				return err
			}
			return copyFile(src, dst)
		})
	}
	return g.Wait()
}
