package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ddl/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context.
func (st *session) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Flags()
	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня включает phase
	if output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("invalid trace format: %w", err)
	}

	cfg := trace.Config{Level: level, Format: format, OutputPath: output}
	if output == "" || output == "-" {
		cfg.Output = writerOnly{st.stderr}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	st.tracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// finishTracing flushes the tracer. A ring tracer (level error) only
// writes its buffer when the command failed.
func (st *session) finishTracing(failed bool) {
	if st.tracer == nil {
		return
	}
	if ring, ok := st.tracer.(*trace.RingTracer); ok && failed {
		fmt.Fprintln(st.stderr, "trace: last events before failure:")
		if err := ring.Dump(st.stderr, trace.FormatText); err != nil {
			fmt.Fprintf(st.stderr, "trace: dump error: %v\n", err)
		}
	}
	if err := st.tracer.Flush(); err != nil {
		fmt.Fprintf(st.stderr, "trace: flush error: %v\n", err)
	}
	if err := st.tracer.Close(); err != nil {
		fmt.Fprintf(st.stderr, "trace: close error: %v\n", err)
	}
}

// writerOnly hides Close so the tracer never closes stderr.
type writerOnly struct{ io.Writer }
