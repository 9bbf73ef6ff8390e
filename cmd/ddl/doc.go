package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ddl/internal/docgen"
	"ddl/internal/project"
)

func newDocCmd(st *session) *cobra.Command {
	var (
		out   string
		title string
	)
	cmd := &cobra.Command{
		Use:   "doc [flags] FILE",
		Short: "Render Markdown documentation for a core file",
		Long: `Doc parses FILE with the core grammar and writes a Markdown page.
Without -o the page goes to stdout, or to [doc].out of the nearest ddl.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, dopts, err := st.parseArg(cmd, args[0], "core")
			if err != nil {
				return err
			}
			if err := st.report(cmd.ErrOrStderr(), res.Bag, res.FileSet, dopts, "doc", res.File.Path); err != nil {
				return err
			}
			if res.Structural != nil || res.Bag.HasErrors() {
				return errReported
			}

			var buf bytes.Buffer
			done := st.timer.Track("doc")
			if err := docgen.Markdown(&buf, res.Core, docgen.Options{Title: title}); err != nil {
				return err
			}
			done("")

			target, err := docTarget(out, args[0])
			if err != nil {
				return err
			}
			if target == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("failed to create output dir: %w", err)
			}
			if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil { // #nosec G306 -- docs are public
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file ('-' for stdout)")
	cmd.Flags().StringVar(&title, "title", "", "level-1 heading for the page")
	return cmd
}

// docTarget resolves where the page goes; "" means stdout.
func docTarget(out, input string) (string, error) {
	switch out {
	case "-":
		return "", nil
	case "":
	default:
		return out, nil
	}
	manifest, ok, err := project.Load(filepath.Dir(input))
	if err != nil || !ok || manifest.Config.Doc.Out == "" {
		return "", err
	}
	name := filepath.Base(input)
	for _, ext := range []string{".core.ddl", ".cddl", ".ddl"} {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return filepath.Join(manifest.Root, manifest.Config.Doc.Out, name+".md"), nil
}
