// Package cache manages the disposable local checkout of the template
// repository. The cache lives at <project root>/.template and is
// destroyed and re-cloned at the start of every sync; it is never
// updated incrementally. The package also provides the pure path
// mapping between a project file and its mirrored template location.
package cache
