package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/tmpl-labs/tmplsync/internal/cache"
)

// FileName is the configuration file name at the project root.
const FileName = "template.json"

// ignoreFileName is the version-control ignore file read for extra
// exclusions. Lines are matched literally against basenames; no glob
// or comment handling is applied.
const ignoreFileName = ".gitignore"

// ErrMissingSource indicates that template.json has no source field.
var ErrMissingSource = errors.New("template.json: required field \"source\" is missing")

// ErrRequires indicates that the template's required tool version is
// not satisfied by this build.
var ErrRequires = errors.New("template version requirement not satisfied")

// FileSpec names a JSON file that is merged field-by-field instead of
// copied, along with the top-level keys each side owns independently.
type FileSpec struct {
	Name       string   `json:"name"`
	IgnoreKeys []string `json:"ignoreKeys,omitempty"`
}

// Config is the resolved sync configuration for one project. It is
// built once per invocation and not modified afterwards.
type Config struct {
	// Source is the template repository locator. Always non-empty.
	Source string

	// Requires is an optional semver constraint on the tool version.
	Requires string

	// JSON lists the files merged field-by-field, in config order.
	JSON []FileSpec

	// Ignore holds every basename excluded from the bulk copy phase.
	Ignore map[string]struct{}
}

// rawConfig mirrors the on-disk shape of template.json.
type rawConfig struct {
	Source   string     `json:"source"`
	Requires string     `json:"requires"`
	Ignore   []string   `json:"ignore"`
	JSON     []FileSpec `json:"json"`
}

// Load reads template.json and .gitignore under root and returns the
// resolved Config. A missing or malformed template.json degrades to an
// empty configuration, which then fails with ErrMissingSource; a
// missing .gitignore contributes nothing. toolVersion is the build
// version checked against the optional requires constraint ("dev" and
// empty skip the check).
func Load(root, toolVersion string) (*Config, error) {
	raw := readRawConfig(filepath.Join(root, FileName))

	if raw.Source == "" {
		return nil, ErrMissingSource
	}
	if err := checkRequires(raw.Requires, toolVersion); err != nil {
		return nil, err
	}

	ignore := map[string]struct{}{
		".git":        {},
		cache.DirName: {},
	}
	for _, line := range readIgnoreFile(filepath.Join(root, ignoreFileName)) {
		ignore[line] = struct{}{}
	}
	for _, spec := range raw.JSON {
		ignore[spec.Name] = struct{}{}
	}
	for _, name := range raw.Ignore {
		ignore[name] = struct{}{}
	}

	return &Config{
		Source:   raw.Source,
		Requires: raw.Requires,
		JSON:     raw.JSON,
		Ignore:   ignore,
	}, nil
}

// readRawConfig parses the configuration file. Read and parse failures
// both yield the zero value; whether that is fatal is decided by the
// caller (absence of source is, nothing else here).
func readRawConfig(path string) rawConfig {
	var raw rawConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return raw
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return rawConfig{}
	}
	return raw
}

// readIgnoreFile returns the non-empty lines of the ignore file, or
// nil when it cannot be read.
func readIgnoreFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// checkRequires verifies the optional requires constraint against the
// running tool version. Development builds skip the check.
func checkRequires(constraint, toolVersion string) error {
	if constraint == "" || toolVersion == "" || toolVersion == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("%w: invalid constraint %q: %v", ErrRequires, constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(toolVersion, "v"))
	if err != nil {
		return fmt.Errorf("%w: cannot parse tool version %q: %v", ErrRequires, toolVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: template requires %q, running %s", ErrRequires, constraint, toolVersion)
	}
	return nil
}
