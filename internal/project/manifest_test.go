package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFindsManifestAbove(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "formats"

[check]
level = "core"
max_diagnostics = 50
exclude = ["vendor/*"]

[doc]
out = "site"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load = %v, %v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	c := m.Config
	if c.Package.Name != "formats" || c.Check.Level != "core" || c.Check.MaxDiagnostics != 50 || c.Doc.Out != "site" {
		t.Fatalf("config = %+v", c)
	}
	if !c.Check.Excluded("vendor/x.ddl") || c.Check.Excluded("src/x.ddl") {
		t.Error("exclude patterns not applied")
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if ok || err != nil {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing package", "[check]\nlevel = \"core\"\n", "missing [package]"},
		{"empty name", "[package]\nname = \" \"\n", "missing [package].name"},
		{"bad level", "[package]\nname = \"x\"\n[check]\nlevel = \"hir\"\n", "[check].level"},
		{"unknown key", "[package]\nname = \"x\"\nedition = 2\n", "unknown key package.edition"},
		{"negative jobs", "[package]\nname = \"x\"\n[check]\njobs = -1\n", "must not be negative"},
		{"bad pattern", "[package]\nname = \"x\"\n[check]\nexclude = [\"[\"]\n", "bad exclude pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) || !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}

	path := writeManifest(t, t.TempDir(), "[package]\nname = \"x\"\n")
	cfg, err := LoadConfig(path)
	if err != nil || cfg.Check.Level != "auto" {
		t.Fatalf("default level: %+v, %v", cfg, err)
	}

	path = writeManifest(t, t.TempDir(), "[package\n")
	if _, err := LoadConfig(path); err == nil || errors.Is(err, ErrInvalidManifest) {
		t.Fatalf("syntax errors are parse failures, got %v", err)
	}
}

func TestInitRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path, err := Init(dir, "shapes")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "shapes" || cfg.Check.Level != "auto" || cfg.Doc.Out != "docs" {
		t.Fatalf("config = %+v", cfg)
	}
	if _, err := Init(dir, "again"); err == nil {
		t.Fatal("Init must not overwrite an existing manifest")
	}
}

func TestCombine(t *testing.T) {
	var d Digest
	a := Combine(d, "core", "1.0")
	if a != Combine(d, "core", "1.0") {
		t.Fatal("Combine must be deterministic")
	}
	if a == Combine(d, "core1", ".0") || a == Combine(d, "surface", "1.0") {
		t.Fatal("different parts must give different digests")
	}
}
