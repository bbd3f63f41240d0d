package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch by adopting its file list wholesale",
		Long: `Merge a branch into the current one.

The merge policy is replacement, not union: the new commit's file list is
the target branch tip's list verbatim, and no conflict detection is done.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			c, err := repo.Merge(args[0])
			if errors.Is(err, vcs.ErrUpToDate) {
				fmt.Fprintln(cmd.OutOrStdout(), "already up to date")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "merged %s: %s\n",
				branchStyle.Render(args[0]), hashStyle.Render(vcs.DigestString(c)))
			return nil
		},
	}
}
