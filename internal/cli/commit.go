package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <message>",
		Short: "Record the staged entries as a new commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			c, err := repo.Commit(args[0])
			if errors.Is(err, vcs.ErrNothingStaged) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing staged, nothing to commit")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "committed %s\n", hashStyle.Render(vcs.DigestString(c)))
			return nil
		},
	}
}
