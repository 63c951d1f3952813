package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeCloner records clone calls and optionally writes files into the
// target directory to simulate a checkout.
type fakeCloner struct {
	err   error
	calls []string
	files map[string]string // relative path -> content
}

func (f *fakeCloner) Clone(_ context.Context, url, dir string) error {
	f.calls = append(f.calls, url+" -> "+dir)
	if f.err != nil {
		return f.err
	}
	for rel, content := range f.files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func TestRefreshReplacesExistingCache(t *testing.T) {
	root := t.TempDir()

	// Seed a stale cache.
	stale := filepath.Join(Dir(root), "stale.txt")
	if err := os.MkdirAll(Dir(root), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	cloner := &fakeCloner{files: map[string]string{"README.md": "# template"}}
	c := New(cloner)

	if err := c.Refresh(context.Background(), "https://example.com/tpl.git", root); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale cache file should have been removed")
	}
	if _, err := os.Stat(filepath.Join(Dir(root), "README.md")); err != nil {
		t.Errorf("cloned file missing: %v", err)
	}
	if len(cloner.calls) != 1 {
		t.Errorf("clone calls = %d, want 1", len(cloner.calls))
	}
}

func TestRefreshCloneFailure(t *testing.T) {
	root := t.TempDir()
	c := New(&fakeCloner{err: fmt.Errorf("authentication required")})

	err := c.Refresh(context.Background(), "https://example.com/tpl.git", root)
	if !errors.Is(err, ErrClone) {
		t.Errorf("Refresh error = %v, want ErrClone", err)
	}
}

func TestRefreshMissingCacheIsFine(t *testing.T) {
	root := t.TempDir()
	c := New(&fakeCloner{})

	// No existing .template directory; removal must be a silent no-op.
	if err := c.Refresh(context.Background(), "repo-url", root); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
}
