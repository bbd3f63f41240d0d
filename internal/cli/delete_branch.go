package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newDeleteBranchCmd creates the delete-branch command
func newDeleteBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-branch <branch>",
		Short: "Delete a branch (the current and default branches are protected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			if err := repo.DeleteBranch(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted branch %s\n", branchStyle.Render(args[0]))
			return nil
		},
	}
}
