// Package engine orchestrates a sync run: load the project
// configuration, refresh the template cache, merge the configured JSON
// files in the chosen direction, then bulk-copy the remaining
// non-ignored files between the project and the cache.
package engine
