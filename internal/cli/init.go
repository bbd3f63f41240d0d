package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty grit repository in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, created, err := vcs.Init(".")
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintln(cmd.OutOrStdout(), "repository already initialized")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized empty repository in %s\n", vcs.RepoDirName)
			return nil
		},
	}
}
