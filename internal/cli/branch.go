package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch [name]",
		Short: "List branches, or create one at the current HEAD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names, current, err := repo.Branches()
				if err != nil {
					return err
				}
				for _, name := range names {
					if name == current {
						fmt.Fprintf(out, "* %s\n", currentStyle.Render(name))
					} else {
						fmt.Fprintf(out, "  %s\n", branchStyle.Render(name))
					}
				}
				return nil
			}

			if err := repo.CreateBranch(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "created branch %s\n", branchStyle.Render(args[0]))
			return nil
		},
	}
}
