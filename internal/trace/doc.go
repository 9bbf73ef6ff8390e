// Package trace records what the ddl pipeline is doing.
//
// Tracing is off unless the CLI is started with --trace. Events form a tree
// of spans: a command span holds phase spans (lex, parse, check, doc), and
// during directory checks each file gets its own span.
//
//	tr, _ := trace.New(trace.Config{Level: trace.LevelPhase, OutputPath: "-"})
//	ctx = trace.WithTracer(ctx, tr)
//
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", 0)
//	defer sp.End("")
//
// Levels:
//
//   - off: nothing
//   - error: events go to an in-memory ring and are dumped only on failure
//   - phase: command and phase boundaries
//   - detail: plus one span per file
//   - debug: plus one point event per item
package trace
