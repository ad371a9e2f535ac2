package mod

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitAndLoad(t *testing.T) {
	dir := t.TempDir()

	if err := Init("demo", dir); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "demo" {
		t.Fatalf("got name %q, want demo", m.Name)
	}
	if m.MaxRecursionDepth != defaultMaxRecursionDepth {
		t.Fatalf("got max recursion depth %d, want default %d", m.MaxRecursionDepth, defaultMaxRecursionDepth)
	}
}

func TestInitRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	if err := Init("demo", dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Init("demo", dir); err == nil {
		t.Fatalf("expected second Init to fail, got none")
	}
}

func TestLoadRejectsInvalidName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candi-mod.toml")
	content := "[module]\nname = \"1bad\"\nentry = \"main.cd\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected an invalid-identifier error, got none")
	}
}

func TestResolveIncludeChecksRootFirst(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "util.cd"), []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m := Default(filepath.Join(dir, "main.cd"))

	full, err := m.ResolveInclude("util.cd")
	if err != nil {
		t.Fatalf("ResolveInclude: %v", err)
	}
	if filepath.Dir(full) != dir {
		t.Fatalf("got %q, want a file under %q", full, dir)
	}
}
