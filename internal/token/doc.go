// Package token defines the lexical categories shared by the surface and
// core parsers.
// Invariants:
//   - Token.Text is the source slice covered by Token.Span, except that the
//     lexer NFC-normalises non-ASCII identifiers.
//   - Keyword/identifier disambiguation is done by the lexer; parsers trust Kind.
//   - Doc comments are real tokens, not trivia: the grammar places them.
//   - Primitive names (U8, Format, true, ...) are identifiers; only the core
//     parser gives them meaning.
package token
