package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <commit>",
		Short: "Move HEAD and the current branch to a commit, discarding staged state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			if err := repo.Reset(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset to %s\n", hashStyle.Render(args[0]))
			return nil
		},
	}
}
