package driver

import (
	"context"
	"fmt"
	"strconv"

	"ddl/internal/diag"
	"ddl/internal/lexer"
	"ddl/internal/source"
	"ddl/internal/token"
	"ddl/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path into a fresh FileSet and lexes it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	toks := lexFile(ctx, file, bag, opts)
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}

func lexFile(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) []token.Token {
	_, sp := trace.Start(ctx, trace.ScopePhase, "lex")
	done := opts.Timer.Track("lex")

	toks := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		KeepNFD:  opts.KeepNFD,
	})

	n := strconv.Itoa(len(toks))
	done(n + " tokens")
	sp.WithExtra("tokens", n).End(file.Path)
	return toks
}
