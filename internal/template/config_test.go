package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmpl-labs/tmplsync/internal/cache"
)

func writeProject(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadResolvesIgnoreSet(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		FileName:     `{"source":"https://example.com/tpl.git","ignore":["dist"],"json":[{"name":"pkg.json","ignoreKeys":["version"]}]}`,
		".gitignore": "node_modules\n\nbuild\r\n",
	})

	cfg, err := Load(root, "dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Source != "https://example.com/tpl.git" {
		t.Errorf("Source = %q", cfg.Source)
	}

	for _, name := range []string{".git", cache.DirName, "node_modules", "build", "dist", "pkg.json"} {
		if _, ok := cfg.Ignore[name]; !ok {
			t.Errorf("ignore set missing %q", name)
		}
	}
	if _, ok := cfg.Ignore[""]; ok {
		t.Error("ignore set must not contain empty lines")
	}

	if len(cfg.JSON) != 1 || cfg.JSON[0].Name != "pkg.json" {
		t.Fatalf("JSON = %+v", cfg.JSON)
	}
	if len(cfg.JSON[0].IgnoreKeys) != 1 || cfg.JSON[0].IgnoreKeys[0] != "version" {
		t.Errorf("IgnoreKeys = %v", cfg.JSON[0].IgnoreKeys)
	}
}

func TestLoadMissingSource(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		FileName: `{"ignore":["dist"]}`,
	})

	_, err := Load(root, "dev")
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Load = %v, want ErrMissingSource", err)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	// No template.json at all degrades to an empty config, which then
	// fails on the missing source.
	_, err := Load(t.TempDir(), "dev")
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Load = %v, want ErrMissingSource", err)
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{FileName: `{broken`})

	_, err := Load(root, "dev")
	if !errors.Is(err, ErrMissingSource) {
		t.Errorf("Load = %v, want ErrMissingSource", err)
	}
}

func TestLoadMissingGitignoreIsFine(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, map[string]string{
		FileName: `{"source":"repo-url"}`,
	})

	cfg, err := Load(root, "dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := cfg.Ignore[".git"]; !ok {
		t.Error("built-in ignores must be present even without .gitignore")
	}
}

func TestLoadRequires(t *testing.T) {
	tests := []struct {
		name        string
		requires    string
		toolVersion string
		wantErr     bool
	}{
		{"satisfied", ">= 0.2", "0.3.1", false},
		{"unsatisfied", ">= 2.0", "0.3.1", true},
		{"dev build skips check", ">= 2.0", "dev", false},
		{"no constraint", "", "0.3.1", false},
		{"v prefix tolerated", ">= 0.2", "v0.3.1", false},
		{"bad constraint", "not-a-constraint", "0.3.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProject(t, root, map[string]string{
				FileName: `{"source":"repo-url","requires":"` + tt.requires + `"}`,
			})

			_, err := Load(root, tt.toolVersion)
			if tt.wantErr && !errors.Is(err, ErrRequires) {
				t.Errorf("Load = %v, want ErrRequires", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Load: %v", err)
			}
		})
	}
}
