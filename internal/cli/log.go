package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show first-parent commit history from HEAD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			entries, err := repo.Log()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				branch, _, _ := repo.Status()
				fmt.Fprintf(out, "no commits on branch %q\n", branch)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(out, hashStyle.Render("commit "+vcs.DigestString(e.Digest)))
				if e.Commit.MergeParent != "" {
					fmt.Fprintf(out, "merge: %s\n", faintStyle.Render(e.Commit.MergeParent))
				}
				fmt.Fprintf(out, "date:  %s\n", e.Commit.Timestamp.Format(time.RFC3339))
				fmt.Fprintf(out, "\n    %s\n\n", e.Commit.Message)
			}
			return nil
		},
	}
}
