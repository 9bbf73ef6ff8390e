package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ddl/internal/diagfmt"
	"ddl/internal/driver"
)

func newTokenizeCmd(st *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] FILE",
		Short: "Print the token stream of a ddl file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			dopts, err := readDiagOptions(cmd)
			if err != nil {
				return err
			}
			result, err := driver.Tokenize(cmd.Context(), args[0], driver.Options{
				MaxDiagnostics: dopts.maxDiagnostics,
				Timer:          st.newTimer(dopts),
			})
			if err != nil {
				return fmt.Errorf("tokenization failed: %w", err)
			}

			// Диагностика в stderr, токены в stdout
			if err := st.report(cmd.ErrOrStderr(), result.Bag, result.FileSet, dopts, "tokenize", result.File.Path); err != nil {
				return err
			}
			switch format {
			case "pretty":
				return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
			case "json":
				return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
