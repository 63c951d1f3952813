// Package walker enumerates the regular files under a directory tree,
// skipping entries whose basename appears in an ignore set. Sibling
// directories are descended concurrently; results are unordered.
package walker
