// Package template loads and validates the per-project sync
// configuration. The configuration lives in template.json at the
// project root and names the template repository, the JSON files that
// are merged field-by-field, and extra basenames to exclude from bulk
// copying. The resolved ignore set additionally folds in .gitignore
// lines and built-in exclusions.
package template
