package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <commit>",
		Short: "Show a commit and the per-file changes against its parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			commit, changes, err := repo.Show(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hashStyle.Render("commit "+args[0]))
			fmt.Fprintf(out, "date:  %s\n", commit.Timestamp.Format(time.RFC3339))
			fmt.Fprintf(out, "\n    %s\n\n", commit.Message)
			for _, ch := range changes {
				printChange(out, ch)
			}
			return nil
		},
	}
}
