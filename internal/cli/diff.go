package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show line diffs between staged entries and the HEAD commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			changes, err := repo.Diff()
			if errors.Is(err, vcs.ErrNothingStaged) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing staged")
				return nil
			}
			if err != nil {
				return err
			}
			for _, ch := range changes {
				printChange(cmd.OutOrStdout(), ch)
			}
			return nil
		},
	}
}
