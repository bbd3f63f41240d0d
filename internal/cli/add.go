package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grit-vcs/grit/internal/vcs"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>...",
		Short: "Stage file contents for the next commit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := vcs.Open(".")
			if err != nil {
				return err
			}
			for _, path := range args {
				digest, err := repo.Add(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "staged %s (%s)\n", path, faintStyle.Render(shortDigest(digest)))
			}
			return nil
		},
	}
}
