package jsonmerge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MergeFiles merges the JSON object at srcPath into the JSON object at
// dstPath and writes the result back to dstPath. Top-level keys listed
// in ignoreKeys are stripped from the source before merging, so the
// destination's own values for those keys survive.
//
// A missing or unreadable file on either side is treated as an empty
// object; only write failures are reported. Output uses 2-space
// indentation with a trailing newline so the template stays
// diff-friendly under version control.
func MergeFiles(dstPath, srcPath string, ignoreKeys []string) error {
	dst := readObject(dstPath)
	src := readObject(srcPath)

	merged := Merge(dst, Omit(ignoreKeys, src))

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding merged %s: %w", filepath.Base(dstPath), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dstPath, err)
	}
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("writing merged %s: %w", dstPath, err)
	}
	return nil
}

// readObject reads a JSON object from path. Any read or parse failure
// yields an empty object; a file that is absent on one side of the
// sync is an expected state, not an error.
func readObject(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}
