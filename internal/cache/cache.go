package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the template cache directory name under the project root.
const DirName = ".template"

// ErrClone indicates that cloning the template repository failed.
// Clone failure is fatal to the whole sync operation.
var ErrClone = errors.New("template clone failed")

// Cloner materializes a checkout of a repository into a local directory.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// Cache manages the template checkout for a project.
type Cache struct {
	cloner Cloner
}

// New returns a Cache that obtains checkouts through the given Cloner.
func New(cloner Cloner) *Cache {
	return &Cache{cloner: cloner}
}

// Dir returns the cache directory for a project root.
func Dir(root string) string {
	return filepath.Join(root, DirName)
}

// Refresh replaces the cache under root with a fresh clone of source.
// Any existing cache directory is removed first; removal failure is
// swallowed since a partially removed cache is overwritten by the
// clone anyway. Clone failure returns an error wrapping ErrClone.
func (c *Cache) Refresh(ctx context.Context, source, root string) error {
	dir := Dir(root)
	_ = os.RemoveAll(dir)

	if err := c.cloner.Clone(ctx, source, dir); err != nil {
		return fmt.Errorf("%w: cloning %q into %s: %v", ErrClone, source, dir, err)
	}
	return nil
}
