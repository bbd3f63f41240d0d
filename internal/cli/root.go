package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root grit command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grit",
		Short: "grit is a minimal content-addressed version control system",
		Long: `grit is a minimal content-addressed version control system.

It tracks snapshots of a file tree as digest-addressed objects, with a
staging area, an append-only commit history, and named branch pointers.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newCommitCmd(),
		newLogCmd(),
		newShowCmd(),
		newStatusCmd(),
		newBranchCmd(),
		newCheckoutCmd(),
		newMergeCmd(),
		newDeleteBranchCmd(),
		newResetCmd(),
		newDiffCmd(),
	)

	return rootCmd
}
