package diagfmt

import (
	"encoding/json"
	"io"

	"ddl/internal/core"
	"ddl/internal/source"
	"ddl/internal/surface"
)

// FormatSurfaceTree prints m as an indented tree, one node per line.
func FormatSurfaceTree(w io.Writer, m *surface.Module, fs *source.FileSet) error {
	return writeTree(w, surfaceTree(m, fs), fs)
}

// FormatCoreTree is FormatSurfaceTree for core modules.
func FormatCoreTree(w io.Writer, m *core.Module, fs *source.FileSet) error {
	return writeTree(w, coreTree(m, fs), fs)
}

func FormatSurfaceJSON(w io.Writer, m *surface.Module, fs *source.FileSet) error {
	return encodeTree(w, surfaceTree(m, fs))
}

func FormatCoreJSON(w io.Writer, m *core.Module, fs *source.FileSet) error {
	return encodeTree(w, coreTree(m, fs))
}

func encodeTree(w io.Writer, root *treeNode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}
