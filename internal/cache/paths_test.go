package cache

import (
	"path/filepath"
	"testing"
)

func TestTemplatePath(t *testing.T) {
	root := filepath.Join("/work", "project")

	got, err := TemplatePath(filepath.Join(root, "src", "main.go"), root)
	if err != nil {
		t.Fatalf("TemplatePath: %v", err)
	}
	want := filepath.Join(root, DirName, "src", "main.go")
	if got != want {
		t.Errorf("TemplatePath = %q, want %q", got, want)
	}
}

func TestProjectPath(t *testing.T) {
	root := filepath.Join("/work", "project")

	got, err := ProjectPath(filepath.Join(root, DirName, "src", "main.go"), root)
	if err != nil {
		t.Fatalf("ProjectPath: %v", err)
	}
	want := filepath.Join(root, "src", "main.go")
	if got != want {
		t.Errorf("ProjectPath = %q, want %q", got, want)
	}
}

func TestPathsRoundTrip(t *testing.T) {
	root := filepath.Join("/work", "project")
	orig := filepath.Join(root, "configs", "app.json")

	tpl, err := TemplatePath(orig, root)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ProjectPath(tpl, root)
	if err != nil {
		t.Fatal(err)
	}
	if back != orig {
		t.Errorf("round trip = %q, want %q", back, orig)
	}
}

func TestTemplatePathOutsideRoot(t *testing.T) {
	if _, err := TemplatePath("/elsewhere/file.go", "/work/project"); err == nil {
		t.Error("expected error for path outside the project root")
	}
}

func TestProjectPathOutsideCache(t *testing.T) {
	root := "/work/project"
	// A project file that is not inside .template must be rejected.
	if _, err := ProjectPath(filepath.Join(root, "src", "main.go"), root); err == nil {
		t.Error("expected error for path outside the template cache")
	}
}
