package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ddl/internal/delaborate"
	"ddl/internal/diagfmt"
	"ddl/internal/format"
)

func newDelabCmd(st *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delab [flags] FILE",
		Short: "Convert a core file back to surface syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			res, dopts, err := st.parseArg(cmd, args[0], "core")
			if err != nil {
				return err
			}
			if err := st.report(cmd.ErrOrStderr(), res.Bag, res.FileSet, dopts, "delab", res.File.Path); err != nil {
				return err
			}
			if res.Structural != nil {
				return errReported
			}

			m := delaborate.Module(res.Core)
			out := cmd.OutOrStdout()
			switch outFormat {
			case "text":
				_, err = out.Write(format.Module(m, format.Options{}))
			case "tree":
				err = diagfmt.FormatSurfaceTree(out, m, res.FileSet)
			case "json":
				err = diagfmt.FormatSurfaceJSON(out, m, res.FileSet)
			default:
				return fmt.Errorf("unknown format: %s", outFormat)
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
	cmd.Flags().String("format", "text", "output format (text|tree|json)")
	return cmd
}
