package engine

import (
	"fmt"
	"os"
)

// EnsureDir creates path and every missing ancestor. A path that
// already exists is success, including when another goroutine created
// it between check and creation.
func EnsureDir(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// copyFile copies a single file from src to dst, preserving the
// source's permission bits.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
