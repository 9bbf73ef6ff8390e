package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ddl/internal/diagfmt"
	"ddl/internal/driver"
)

func newParseCmd(st *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] FILE",
		Short: "Parse a ddl file and print its syntax tree",
		Long: `Parse reads FILE with the surface or core grammar and prints the tree.
The grammar follows the extension (.cddl and .core.ddl are core) unless --level is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, dopts, err := st.parseArg(cmd, args[0], "")
			if err != nil {
				return err
			}
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}

			if err := st.report(cmd.ErrOrStderr(), res.Bag, res.FileSet, dopts, "parse", res.File.Path); err != nil {
				return err
			}
			if res.Structural != nil {
				return errReported
			}

			out := cmd.OutOrStdout()
			switch {
			case format == "tree" && res.Core != nil:
				err = diagfmt.FormatCoreTree(out, res.Core, res.FileSet)
			case format == "tree":
				err = diagfmt.FormatSurfaceTree(out, res.Surface, res.FileSet)
			case format == "json" && res.Core != nil:
				err = diagfmt.FormatCoreJSON(out, res.Core, res.FileSet)
			case format == "json":
				err = diagfmt.FormatSurfaceJSON(out, res.Surface, res.FileSet)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			if err != nil {
				return err
			}
			if res.Bag.HasErrors() {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().String("level", "auto", "grammar to use (auto|surface|core)")
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	return cmd
}

// parseArg runs the single-file pipeline for path. forced overrides the
// --level flag when not empty.
func (st *session) parseArg(cmd *cobra.Command, path, forced string) (*driver.ParseResult, diagOptions, error) {
	dopts, err := readDiagOptions(cmd)
	if err != nil {
		return nil, dopts, err
	}
	levelStr := forced
	if levelStr == "" && cmd.Flags().Lookup("level") != nil {
		if levelStr, err = cmd.Flags().GetString("level"); err != nil {
			return nil, dopts, fmt.Errorf("failed to get level flag: %w", err)
		}
	}
	level, err := driver.ParseLevel(levelStr)
	if err != nil {
		return nil, dopts, err
	}
	res, err := driver.Parse(cmd.Context(), path, driver.Options{
		Level:          level,
		MaxDiagnostics: dopts.maxDiagnostics,
		Timer:          st.newTimer(dopts),
	})
	if err != nil {
		return nil, dopts, err
	}
	return res, dopts, nil
}
