package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"x = U8;",
	"//! docs\n/// Area\nstruct Area { width : F32Le, height : F32Le, }\n",
	"P : Format = if flag { U16Be } else { struct { a : U8 } };",
	"y = bool_elim true { int -1, f64 2.5e-3 : F64 };",
	"z = item Area : Type : Kind;",
	"e = !;",
	"bad = int 0b102;",
	"s = \"unterminated",
	"struct S { a : U8 b : U8 }",
	"x = ((((((U8))))));",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
	addReadmeSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// все *.ddl и *.cddl из testdata
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".ddl" && ext != ".cddl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// readmeBlock is one ```ddl fenced block; "```ddl core" marks core syntax.
type readmeBlock struct {
	Core bool
	Src  []byte
}

func readmeBlocks() ([]readmeBlock, error) {
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(filepath.Join("..", "..", "README.md"))
	if err != nil {
		return nil, err
	}
	var (
		blocks []readmeBlock
		lines  [][]byte
		cur    *readmeBlock
	)
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(line))
		switch {
		case strings.HasPrefix(trimmed, "```ddl"):
			cur = &readmeBlock{Core: strings.TrimSpace(strings.TrimPrefix(trimmed, "```ddl")) == "core"}
			lines = lines[:0]
		case strings.HasPrefix(trimmed, "```"):
			if cur != nil {
				cur.Src = bytes.Join(lines, []byte{'\n'})
				blocks = append(blocks, *cur)
			}
			cur = nil
		case cur != nil:
			lines = append(lines, line)
		}
	}
	return blocks, nil
}

// addReadmeSeeds adds every ```ddl block of the README.
func addReadmeSeeds(f *testing.F) {
	blocks, err := readmeBlocks()
	if err != nil {
		return
	}
	for _, b := range blocks {
		if snippet := clampSeed(b.Src); len(snippet) > 0 {
			f.Add(snippet)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
