package cache

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TemplatePath maps a file under the project root to its mirrored
// location inside the template cache. It is a pure path computation;
// no filesystem access happens. An error is returned when path does
// not lie under root.
func TemplatePath(path, root string) (string, error) {
	rel, err := relUnder(path, root)
	if err != nil {
		return "", fmt.Errorf("mapping to template path: %w", err)
	}
	return filepath.Join(Dir(root), rel), nil
}

// ProjectPath is the inverse of TemplatePath: it maps a file inside
// the template cache back to its location under the project root. An
// error is returned when path does not lie under the cache directory.
func ProjectPath(path, root string) (string, error) {
	rel, err := relUnder(path, Dir(root))
	if err != nil {
		return "", fmt.Errorf("mapping to project path: %w", err)
	}
	return filepath.Join(root, rel), nil
}

// relUnder computes the relative path of p under root, rejecting paths
// that escape it.
func relUnder(p, root string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("%q is not relative to %q: %w", p, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is outside %q", p, root)
	}
	return rel, nil
}
