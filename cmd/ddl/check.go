package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ddl/internal/diag"
	"ddl/internal/driver"
	"ddl/internal/project"
	"ddl/internal/source"
	"ddl/internal/ui"
)

type checkFlags struct {
	level    string
	jobs     int
	uiMode   string
	cache    bool
	cacheDir string
	summary  bool
}

func newCheckCmd(st *session) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [flags] [PATH]",
		Short: "Check a ddl file or every ddl file under a directory",
		Long: `Check parses each file with the grammar its extension selects and reports
all diagnostics. Settings from the nearest ddl.toml apply unless overridden by flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return st.runCheck(cmd, path, f)
		},
	}
	cmd.Flags().StringVar(&f.level, "level", "auto", "grammar to use (auto|surface|core)")
	cmd.Flags().IntVar(&f.jobs, "jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().StringVar(&f.uiMode, "ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().BoolVar(&f.cache, "cache", false, "reuse results for unchanged files")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "cache directory (default $XDG_CACHE_HOME/ddl)")
	cmd.Flags().BoolVar(&f.summary, "summary", true, "print a one-line summary to stderr")
	return cmd
}

func (st *session) runCheck(cmd *cobra.Command, path string, f checkFlags) error {
	dopts, err := readDiagOptions(cmd)
	if err != nil {
		return err
	}
	mode, err := readUIMode(f.uiMode)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	root, files := path, []string(nil)
	if !info.IsDir() {
		root = filepath.Dir(path)
		files = []string{filepath.Base(path)}
	}

	opts := driver.CheckOptions{Jobs: f.jobs}
	manifest, ok, err := project.Load(root)
	if err != nil {
		return err
	}
	if ok {
		cfg := manifest.Config.Check
		if !cmd.Flags().Changed("level") {
			f.level = cfg.Level
		}
		if !cmd.Flags().Changed("max-diagnostics") && cfg.MaxDiagnostics > 0 {
			dopts.maxDiagnostics = cfg.MaxDiagnostics
		}
		if !cmd.Flags().Changed("jobs") && cfg.Jobs > 0 {
			opts.Jobs = cfg.Jobs
		}
		projectRoot := manifest.Root
		opts.Exclude = func(rel string) bool {
			rp, err := filepath.Rel(projectRoot, filepath.Join(root, rel))
			return err == nil && cfg.Excluded(rp)
		}
	}
	if opts.Level, err = driver.ParseLevel(f.level); err != nil {
		return err
	}
	opts.MaxDiagnostics = dopts.maxDiagnostics
	opts.Timer = st.newTimer(dopts)

	if f.cache {
		if f.cacheDir != "" {
			opts.Cache, err = driver.NewDiskCache(f.cacheDir)
		} else {
			opts.Cache, err = driver.OpenDiskCache("ddl")
		}
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	if files == nil {
		if files, err = driver.ListSources(root, opts.Exclude); err != nil {
			return fmt.Errorf("failed to list %s: %w", root, err)
		}
		if len(files) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "no ddl files found in %s\n", root)
			return nil
		}
	}

	fileSet := source.NewFileSetWithBase(root)
	var results []driver.CheckResult
	if shouldUseTUI(mode, cmd.OutOrStdout()) && dopts.format != "json" {
		results, err = ui.RunCheck(cmd.Context(), cmd.OutOrStdout(), "checking "+root, fileSet, root, files, opts)
	} else {
		results, err = driver.CheckFiles(cmd.Context(), fileSet, root, files, opts)
	}
	if err != nil {
		return err
	}

	merged := diag.NewBag(0)
	var failed, cached int
	for i := range results {
		r := &results[i]
		merged.Merge(r.Bag)
		if r.Failed() {
			failed++
		}
		if r.Cached {
			cached++
		}
	}
	if err := st.report(cmd.OutOrStdout(), merged, fileSet, dopts, "check", root); err != nil {
		return err
	}
	// load failures have no file to point into
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", r.Err)
		}
	}
	if f.summary && dopts.format != "json" {
		writeCheckSummary(cmd.ErrOrStderr(), len(results), failed, cached)
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

func writeCheckSummary(w io.Writer, total, failed, cached int) {
	var b strings.Builder
	fmt.Fprintf(&b, "checked %d file", total)
	if total != 1 {
		b.WriteByte('s')
	}
	if failed > 0 {
		fmt.Fprintf(&b, ", %d failed", failed)
	}
	if cached > 0 {
		fmt.Fprintf(&b, " (%d cached)", cached)
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(w, b.String())
}
