package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Walk returns the absolute paths of all regular files under root,
// excluding any file or directory whose basename is in ignore. An
// ignored directory prunes its entire subtree. Sibling directories are
// walked concurrently and the returned slice is in no particular
// order; any failure fails the whole walk.
//
// Symlinks and special files are handled as the filesystem reports
// them: a symlink to a directory is descended, anything that is not a
// regular file or directory is skipped.
func Walk(ctx context.Context, root string, ignore map[string]struct{}) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	var (
		mu    sync.Mutex
		files []string
	)

	g, ctx := errgroup.WithContext(ctx)

	var walkDir func(dir string) error
	walkDir = func(dir string) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if _, skip := ignore[entry.Name()]; skip {
				continue
			}
			path := filepath.Join(dir, entry.Name())

			info, err := os.Stat(path) // follows symlinks
			if err != nil {
				return fmt.Errorf("inspecting %s: %w", path, err)
			}

			switch {
			case info.IsDir():
				g.Go(func() error { return walkDir(path) })
			case info.Mode().IsRegular():
				mu.Lock()
				files = append(files, path)
				mu.Unlock()
			}
		}
		return nil
	}

	g.Go(func() error { return walkDir(abs) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
