package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current branch and staged entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			branch, entries, err := repo.Status()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "on branch %s\n", branchStyle.Render(branch))
			if len(entries) == 0 {
				fmt.Fprintln(out, "nothing staged")
				return nil
			}
			fmt.Fprintln(out, "staged:")
			for _, e := range entries {
				fmt.Fprintf(out, "  %s %s\n", e.FilePath, faintStyle.Render(e.FileHash))
			}
			return nil
		},
	}
}
