package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ddl/internal/diag"
	"ddl/internal/diagfmt"
	"ddl/internal/driver"
	"ddl/internal/observ"
	"ddl/internal/prof"
	"ddl/internal/source"
	"ddl/internal/trace"
)

// session carries per-invocation state shared by the subcommands.
type session struct {
	stderr   io.Writer
	useColor bool
	tracer   trace.Tracer
	timer    *observ.Timer
	profiler *prof.Profiler
}

func (st *session) startProfiling(cmd *cobra.Command) error {
	cpu, err := cmd.Flags().GetString("cpuprofile")
	if err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	mem, err := cmd.Flags().GetString("memprofile")
	if err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if cpu == "" && mem == "" {
		return nil
	}
	st.profiler, err = prof.Start(cpu, mem)
	return err
}

func (st *session) configureColor(cmd *cobra.Command) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(mode) {
	case "on", "always":
		st.useColor = true
	case "off", "never":
		st.useColor = false
	case "", "auto":
		st.useColor = isTerminal(cmd.ErrOrStderr())
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	color.NoColor = !st.useColor
	return nil
}

// diagOptions are the persistent flags every diagnostic-producing command reads.
type diagOptions struct {
	format         string
	pathMode       diagfmt.PathMode
	maxDiagnostics int
	timings        bool
}

func readDiagOptions(cmd *cobra.Command) (diagOptions, error) {
	var opts diagOptions
	var err error
	flags := cmd.Flags()
	if opts.format, err = flags.GetString("diag-format"); err != nil {
		return opts, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch opts.format {
	case "pretty", "short", "json":
	default:
		return opts, fmt.Errorf("unknown diag format %q (expected pretty|short|json)", opts.format)
	}
	mode, err := flags.GetString("path-mode")
	if err != nil {
		return opts, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	var ok bool
	if opts.pathMode, ok = diagfmt.ParsePathMode(mode); !ok {
		return opts, fmt.Errorf("unknown path mode %q", mode)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return opts, nil
}

// newTimer returns the timer for this run, or nil when --timings is off.
func (st *session) newTimer(opts diagOptions) *observ.Timer {
	if opts.timings {
		st.timer = observ.NewTimer()
	}
	return st.timer
}

// report renders bag to w in the chosen format. JSON always prints, even
// when empty, so scripts get a document to parse.
func (st *session) report(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts diagOptions, kind, path string) error {
	if opts.timings && opts.format == "json" {
		driver.AppendTimings(bag, kind, path, st.timer)
	}
	bag.Sort()
	switch opts.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         opts.pathMode,
			IncludeNotes:     true,
		})
	case "short":
		if bag.Len() == 0 {
			break
		}
		if err := diagfmt.Short(w, bag, fs, false); err != nil {
			return err
		}
	default:
		if bag.Len() == 0 {
			break
		}
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     st.useColor,
			Context:   1,
			PathMode:  opts.pathMode,
			ShowNotes: true,
		})
	}
	if opts.timings && opts.format != "json" && st.timer != nil {
		_, err := io.WriteString(st.stderr, st.timer.Summary())
		return err
	}
	return nil
}
