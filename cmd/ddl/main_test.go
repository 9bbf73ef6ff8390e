package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), append([]string{"--color=off"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestVersionJSON(t *testing.T) {
	code, out, _ := runCLI(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload["tool"] != "ddl" || payload["version"] == "" {
		t.Fatalf("payload = %v", payload)
	}
	if code, _, stderr := runCLI(t, "version", "--format", "yaml"); code != 1 || !strings.Contains(stderr, "unsupported format") {
		t.Fatalf("bad format: exit %d, %q", code, stderr)
	}
}

func TestParseSurfaceTree(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x = Bogus;"})
	code, out, stderr := runCLI(t, "parse", filepath.Join(dir, "a.ddl"))
	if code != 0 || stderr != "" {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	if !strings.HasPrefix(out, "Module ") || !strings.Contains(out, `Alias "x"`) {
		t.Fatalf("tree = %q", out)
	}
}

func TestParseCoreReportsUnknownGlobal(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.cddl": "x = Bogus;"})
	code, out, stderr := runCLI(t, "--diag-format=short", "parse", "--format", "json", filepath.Join(dir, "a.cddl"))
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr, "error SEM3001") || !strings.Contains(stderr, "1:5") {
		t.Fatalf("stderr = %q", stderr)
	}
	if !strings.Contains(out, `"type": "Error"`) {
		t.Fatalf("json output lacks error term: %s", out)
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"ok.ddl":     "x = U8;",
		"bad.cddl":   "y = Nope;",
		"skip/v.ddl": "x = ;",
		"ddl.toml":   "[package]\nname = \"demo\"\n\n[check]\nexclude = [\"skip/*\"]\n",
	})
	code, out, stderr := runCLI(t, "--diag-format=short", "check", "--ui=off", dir)
	if code != 1 {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	if strings.TrimSpace(out) != "error SEM3001 bad.cddl:1:5 unknown global `Nope`" {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(stderr, "checked 2 files, 1 failed") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestCheckJSONWithCache(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x = U8;"})
	cacheDir := t.TempDir()
	for i := 0; i < 2; i++ {
		code, out, stderr := runCLI(t, "--diag-format=json", "check", "--ui=off", "--cache", "--cache-dir", cacheDir, dir)
		if code != 0 {
			t.Fatalf("run %d: exit %d, %s", i, code, stderr)
		}
		var payload struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal([]byte(out), &payload); err != nil {
			t.Fatalf("run %d: %v\n%s", i, err, out)
		}
		if payload.Count != 0 {
			t.Fatalf("run %d: count = %d", i, payload.Count)
		}
	}
}

func TestCheckStructuralErrorPretty(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x = ;"})
	code, out, _ := runCLI(t, "check", "--ui=off", filepath.Join(dir, "a.ddl"))
	if code != 1 || !strings.Contains(out, "a.ddl:1:5") || !strings.Contains(out, "SYN") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}

func TestDelabAndDoc(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"s.cddl": "//! Shapes.\n\n/// A byte.\nByte = U8 : Format;\n",
	})
	path := filepath.Join(dir, "s.cddl")

	code, out, stderr := runCLI(t, "delab", path)
	if code != 0 {
		t.Fatalf("delab exit %d: %s", code, stderr)
	}
	if !strings.Contains(out, "Byte : Format = U8;") {
		t.Fatalf("delab = %q", out)
	}

	code, out, stderr = runCLI(t, "doc", path)
	if code != 0 {
		t.Fatalf("doc exit %d: %s", code, stderr)
	}
	for _, want := range []string{"@generated by ddl", "Shapes.", "## Byte", "A byte."} {
		if !strings.Contains(out, want) {
			t.Errorf("doc missing %q:\n%s", want, out)
		}
	}
}

func TestDocWritesToManifestOut(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"ddl.toml":   "[package]\nname = \"demo\"\n\n[doc]\nout = \"site\"\n",
		"s.core.ddl": "Byte = U8;\n",
	})
	code, _, stderr := runCLI(t, "doc", filepath.Join(dir, "s.core.ddl"))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	data, err := os.ReadFile(filepath.Join(dir, "site", "s.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "## Byte") {
		t.Fatalf("page = %q", data)
	}
}

func TestFmtCheckAndWrite(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x   =  U8 ;struct S{a:U8}"})
	path := filepath.Join(dir, "a.ddl")

	code, out, _ := runCLI(t, "fmt", "--check", path)
	if code != 1 || strings.TrimSpace(out) != path {
		t.Fatalf("check: exit %d, out %q", code, out)
	}
	if code, _, stderr := runCLI(t, "fmt", "-w", path); code != 0 {
		t.Fatalf("write: exit %d, %s", code, stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "x = U8;\n\nstruct S {\n    a : U8,\n}\n"; string(data) != want {
		t.Fatalf("formatted = %q, want %q", data, want)
	}
	if code, _, _ := runCLI(t, "fmt", "--check", path); code != 0 {
		t.Fatalf("formatted file still reported, exit %d", code)
	}
}

func TestInitCreatesManifest(t *testing.T) {
	dir := t.TempDir()
	code, out, stderr := runCLI(t, "init", "--dir", dir, "shapes")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(out, "ddl.toml") {
		t.Fatalf("out = %q", out)
	}
	if code, _, _ := runCLI(t, "init", "--dir", dir); code != 1 {
		t.Fatal("second init must fail")
	}
}

func TestTraceToFile(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x = U8;"})
	tracePath := filepath.Join(t.TempDir(), "t.ndjson")
	code, _, stderr := runCLI(t, "--trace", tracePath, "parse", filepath.Join(dir, "a.ddl"))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 4 {
		t.Fatalf("want lex and parse spans, got %d lines", len(lines))
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("not ndjson: %q", line)
		}
	}
}

func TestRingTraceDumpedOnFailure(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.ddl": "x = ;"})
	code, _, stderr := runCLI(t, "--trace-level=error", "parse", filepath.Join(dir, "a.ddl"))
	if code != 1 || !strings.Contains(stderr, "trace: last events before failure") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestUnknownFlagValues(t *testing.T) {
	tests := [][]string{
		{"--color=sometimes", "version"},
		{"--diag-format=xml", "parse", "x.ddl"},
		{"check", "--ui=maybe", "--level=core", "."},
		{"parse", "--level=hir", "x.ddl"},
	}
	for _, args := range tests {
		if code, _, _ := runCLI(t, args...); code != 1 {
			t.Errorf("%v: exit %d, want 1", args, code)
		}
	}
}

func TestProfileFlags(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if code, _, stderr := runCLI(t, "--cpuprofile", cpu, "--memprofile", mem, "version"); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}
}
