package lexer

import "ddl/internal/diag"

// DefaultMaxTokenLength bounds a single token in bytes.
const DefaultMaxTokenLength = 1 << 16

type Options struct {
	Reporter       diag.Reporter // может быть nil: ошибки игнорируем, но продолжаем лексить
	MaxTokenLength uint32        // 0 means DefaultMaxTokenLength
	KeepNFD        bool          // skip NFC normalisation of identifiers
}

func (lx *Lexer) report(code diag.Code, msg string, m Mark) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, lx.cursor.SpanFrom(m), msg))
	}
}
