// Package config manages user-level settings stored at
// ~/.tmplsync/config.yaml. Settings cover how template repositories
// are cloned: history depth (clone.depth) and the auth token for
// private templates (auth.token). Environment variables with the
// TMPLSYNC_ prefix override file values.
package config
