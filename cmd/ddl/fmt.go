package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ddl/internal/diag"
	"ddl/internal/format"
	"ddl/internal/parser"
	"ddl/internal/source"
)

type fmtFlags struct {
	check   bool
	write   bool
	tabs    bool
	indent  int
	dropDoc bool
}

func newFmtCmd(st *session) *cobra.Command {
	var f fmtFlags
	cmd := &cobra.Command{
		Use:   "fmt [flags] FILE...",
		Short: "Format surface ddl files",
		Long: `Fmt prints the canonical layout of each surface file. With --check it only
reports files whose layout differs; with --write it rewrites them in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.check && f.write {
				return errors.New("--check and --write cannot be used together")
			}
			dopts, err := readDiagOptions(cmd)
			if err != nil {
				return err
			}
			opt := format.Options{IndentWidth: f.indent, UseTabs: f.tabs, DropDocs: f.dropDoc}
			fs := source.NewFileSet()
			bag := diag.NewBag(dopts.maxDiagnostics)
			changed := 0
			for _, path := range args {
				id, err := fs.Load(path)
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", path, err)
				}
				sf := fs.Get(id)
				out, err := format.File(sf, opt)
				if err != nil {
					var se *parser.StructuralError
					if errors.As(err, &se) {
						bag.Add(se.Diagnostic())
						continue
					}
					return err
				}
				same := bytes.Equal(out, sf.Content)
				switch {
				case f.check:
					if !same {
						changed++
						fmt.Fprintln(cmd.OutOrStdout(), path)
					} else if ok, msg := format.CheckRoundTrip(sf, opt); !ok {
						changed++
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, msg)
					}
				case f.write:
					if same {
						continue
					}
					info, err := os.Stat(path)
					if err != nil {
						return err
					}
					if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
						return fmt.Errorf("failed to write %s: %w", path, err)
					}
					changed++
				default:
					if _, err := cmd.OutOrStdout().Write(out); err != nil {
						return err
					}
				}
			}
			if err := st.report(cmd.ErrOrStderr(), bag, fs, dopts, "fmt", ""); err != nil {
				return err
			}
			if bag.HasErrors() || (f.check && changed > 0) {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&f.check, "check", false, "list files that are not formatted")
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&f.tabs, "tabs", false, "indent with tabs")
	cmd.Flags().IntVar(&f.indent, "indent", 4, "spaces per indent level")
	cmd.Flags().BoolVar(&f.dropDoc, "drop-docs", false, "omit doc comments")
	return cmd
}
