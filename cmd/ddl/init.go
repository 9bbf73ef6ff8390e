package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ddl/internal/project"
)

func newInitCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "init [NAME]",
		Short: "Create a ddl.toml in the target directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if existing, ok, err := project.FindManifest(dir); err == nil && ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: nested inside project %s\n", existing)
			}
			path, err := project.Init(dir, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to create the manifest in (default: current)")
	return cmd
}
