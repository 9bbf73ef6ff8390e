// Package diag defines the diagnostic model shared by the lexer, both
// parsers and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable records of non-fatal findings.
//   - Offer a minimal sink contract (Reporter) so producers never depend on
//     storage or rendering.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Message: short human text.
//   - Primary: the source.Span the finding is about.
//   - Notes: optional secondary spans.
//
// # Emitting diagnostics
//
// A phase receives a Reporter and calls Report once per finding. Reporting
// never aborts the phase: the core parser, for instance, substitutes an Error
// term and keeps going. Each invocation must be given its own Reporter; the
// package keeps no global state, so independent parses may run concurrently.
//
// ReporterFunc adapts a plain callback. BagReporter collects into a Bag, which
// supports sorting and deduplication. DedupReporter and MultiReporter compose.
//
// Rendering lives in internal/diagfmt; golden.go only provides the stable
// one-line form used by tests and the `--diag-format short` CLI output.
package diag
