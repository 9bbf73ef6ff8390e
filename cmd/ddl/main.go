package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ddl/internal/version"
)

// errReported means the failure was already printed as diagnostics.
var errReported = errors.New("errors reported")

func newRootCmd(st *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "ddl",
		Short:         "Data description language front end",
		Long:          `ddl parses surface and core data descriptions, reports diagnostics and renders documentation`,
		Version:       version.Current().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := st.configureColor(cmd); err != nil {
				return err
			}
			if err := st.startProfiling(cmd); err != nil {
				return err
			}
			return st.setupTracing(cmd)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file")
	pf.String("diag-format", "pretty", "diagnostic format (pretty|short|json)")
	pf.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	pf.Bool("timings", false, "show timing information")
	pf.String("trace", "", "write trace events to file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")

	root.AddCommand(
		newTokenizeCmd(st),
		newParseCmd(st),
		newCheckCmd(st),
		newDocCmd(st),
		newDelabCmd(st),
		newFmtCmd(st),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	st := &session{stderr: stderr}
	root := newRootCmd(st)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	st.finishTracing(err != nil)
	if perr := st.profiler.Stop(); perr != nil && err == nil {
		err = perr
	}
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
