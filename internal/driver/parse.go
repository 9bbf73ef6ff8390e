package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ddl/internal/core"
	"ddl/internal/diag"
	"ddl/internal/observ"
	"ddl/internal/parser"
	"ddl/internal/source"
	"ddl/internal/surface"
	"ddl/internal/trace"
)

// Options tune a single-file pipeline.
type Options struct {
	Level          Level
	MaxDiagnostics int
	KeepNFD        bool
	Timer          *observ.Timer // may be nil
	// Reporter, when set, also receives every parser diagnostic as it is
	// reported, before the bag is sorted.
	Reporter diag.Reporter
}

// ParseResult holds whichever module the chosen grammar produced. When the
// file has a structural error, Structural is set, both modules are nil and
// the error is also present in Bag as a Syn* diagnostic.
type ParseResult struct {
	FileSet    *source.FileSet
	File       *source.File
	Level      Level
	Surface    *surface.Module
	Core       *core.Module
	Structural *parser.StructuralError
	Bag        *diag.Bag
}

// Items returns the number of items in the parsed module.
func (r *ParseResult) Items() int {
	switch {
	case r.Surface != nil:
		return len(r.Surface.Items)
	case r.Core != nil:
		return len(r.Core.Items)
	}
	return 0
}

// Parse loads path into a fresh FileSet and parses it. The returned error
// covers I/O only; grammar failures are recorded in the result.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseFile(ctx, fs, fileID, opts)
}

// ParseFile runs lex and parse over a file already in fs.
func ParseFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*ParseResult, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("unknown file id %d", id)
	}
	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Level:   opts.Level.Resolve(file.Path),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	toks := lexFile(ctx, file, res.Bag, opts)

	_, sp := trace.Start(ctx, trace.ScopePhase, "parse")
	done := opts.Timer.Track("parse " + res.Level.String())
	counter := &diag.CountingReporter{Next: diag.MultiReporter{diag.BagReporter{Bag: res.Bag}, opts.Reporter}}
	report := diag.NewDedupReporter(counter)

	var err error
	switch res.Level {
	case LevelCore:
		res.Core, err = parser.ParseCoreModule(id, toks, report)
	default:
		res.Surface, err = parser.ParseSurfaceModule(id, toks, report)
	}
	if err != nil {
		var se *parser.StructuralError
		if !errors.As(err, &se) {
			done("failed")
			sp.End(err.Error())
			return nil, err
		}
		res.Structural = se
		res.Bag.Add(se.Diagnostic())
	}

	note := strconv.Itoa(res.Items()) + " items"
	if res.Structural != nil {
		note = "structural error"
	}
	done(note)
	sp.WithExtra("level", res.Level.String()).
		WithExtra("errors", strconv.Itoa(counter.Errors)).
		End(note)
	return res, nil
}
