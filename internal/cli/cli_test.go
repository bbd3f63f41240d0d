package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grit-vcs/grit/internal/cli"
)

// runGrit executes one grit invocation in-process against the current
// working directory, returning its combined output.
func runGrit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func initRepo(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	out, err := runGrit(t, "init")
	require.NoError(t, err)
	require.Contains(t, out, "initialized empty repository")
}

func TestInit_SecondRunIsNoOp(t *testing.T) {
	initRepo(t)

	out, err := runGrit(t, "init")
	require.NoError(t, err)
	require.Contains(t, out, "already initialized")
}

func TestCommands_RequireRepository(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runGrit(t, "status")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no repository")
}

func TestAddCommitStatusLog(t *testing.T) {
	initRepo(t)

	require.NoError(t, os.WriteFile("a.txt", []byte("hello\n"), 0644))

	out, err := runGrit(t, "add", "a.txt")
	require.NoError(t, err)
	require.Contains(t, out, "staged a.txt")

	out, err = runGrit(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, "main")
	require.Contains(t, out, "a.txt")

	out, err = runGrit(t, "commit", "first")
	require.NoError(t, err)
	require.Contains(t, out, "committed")

	out, err = runGrit(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, "nothing staged")

	out, err = runGrit(t, "log")
	require.NoError(t, err)
	require.Contains(t, out, "first")
}

func TestCommit_NothingStagedExitsZero(t *testing.T) {
	initRepo(t)

	out, err := runGrit(t, "commit", "empty")
	require.NoError(t, err)
	require.Contains(t, out, "nothing staged")
}

func TestLog_NoCommits(t *testing.T) {
	initRepo(t)

	out, err := runGrit(t, "log")
	require.NoError(t, err)
	require.Contains(t, out, `no commits on branch "main"`)
}

func TestBranchCheckoutDelete(t *testing.T) {
	initRepo(t)

	require.NoError(t, os.WriteFile("a.txt", []byte("hello\n"), 0644))
	_, err := runGrit(t, "add", "a.txt")
	require.NoError(t, err)
	_, err = runGrit(t, "commit", "first")
	require.NoError(t, err)

	out, err := runGrit(t, "branch", "feature")
	require.NoError(t, err)
	require.Contains(t, out, "created branch feature")

	out, err = runGrit(t, "branch")
	require.NoError(t, err)
	require.Contains(t, out, "* main")
	require.Contains(t, out, "feature")

	out, err = runGrit(t, "checkout", "feature")
	require.NoError(t, err)
	require.Contains(t, out, "switched to branch feature")

	// Active branch is protected
	_, err = runGrit(t, "delete-branch", "feature")
	require.Error(t, err)

	_, err = runGrit(t, "checkout", "main")
	require.NoError(t, err)
	out, err = runGrit(t, "delete-branch", "feature")
	require.NoError(t, err)
	require.Contains(t, out, "deleted branch feature")

	_, err = runGrit(t, "delete-branch", "main")
	require.Error(t, err)
}

func TestCheckout_DirtyStageFails(t *testing.T) {
	initRepo(t)

	require.NoError(t, os.WriteFile("a.txt", []byte("hello\n"), 0644))
	_, err := runGrit(t, "add", "a.txt")
	require.NoError(t, err)
	_, err = runGrit(t, "commit", "first")
	require.NoError(t, err)
	_, err = runGrit(t, "branch", "feature")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile("b.txt", []byte("pending\n"), 0644))
	_, err = runGrit(t, "add", "b.txt")
	require.NoError(t, err)

	_, err = runGrit(t, "checkout", "feature")
	require.Error(t, err)
	require.Contains(t, err.Error(), "uncommitted changes")
}

func TestMergeAndShowFlow(t *testing.T) {
	initRepo(t)

	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0644))
	_, err := runGrit(t, "add", "a.txt")
	require.NoError(t, err)
	_, err = runGrit(t, "commit", "first")
	require.NoError(t, err)

	_, err = runGrit(t, "branch", "feature")
	require.NoError(t, err)
	_, err = runGrit(t, "checkout", "feature")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile("b.txt", []byte("feature work\n"), 0644))
	_, err = runGrit(t, "add", "b.txt")
	require.NoError(t, err)
	_, err = runGrit(t, "commit", "feature commit")
	require.NoError(t, err)

	_, err = runGrit(t, "checkout", "main")
	require.NoError(t, err)

	// Self-merge rejected
	_, err = runGrit(t, "merge", "main")
	require.Error(t, err)

	// A branch created at the current HEAD is already merged
	_, err = runGrit(t, "branch", "twin")
	require.NoError(t, err)
	out, err := runGrit(t, "merge", "twin")
	require.NoError(t, err)
	require.Contains(t, out, "already up to date")

	out, err = runGrit(t, "merge", "feature")
	require.NoError(t, err)
	require.Contains(t, out, "merged feature")
}

func TestDiffCommand(t *testing.T) {
	initRepo(t)

	out, err := runGrit(t, "diff")
	require.NoError(t, err)
	require.Contains(t, out, "nothing staged")

	require.NoError(t, os.WriteFile("a.txt", []byte("hello"), 0644))
	_, err = runGrit(t, "add", "a.txt")
	require.NoError(t, err)
	_, err = runGrit(t, "commit", "first")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile("a.txt", []byte("hello world"), 0644))
	_, err = runGrit(t, "add", "a.txt")
	require.NoError(t, err)

	out, err = runGrit(t, "diff")
	require.NoError(t, err)
	require.Contains(t, out, "a.txt")
	require.Contains(t, out, "hello world")
}
