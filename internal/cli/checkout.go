package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout <branch>",
		Aliases: []string{"co"},
		Short:   "Switch to a branch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			if err := repo.Checkout(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "switched to branch %s\n", branchStyle.Render(args[0]))
			return nil
		},
	}
}
