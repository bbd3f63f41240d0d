package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	gocid "github.com/ipfs/go-cid"

	"github.com/grit-vcs/grit/internal/vcs"
)

var (
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// shortDigest abbreviates a digest for display.
func shortDigest(c gocid.Cid) string {
	s := vcs.DigestString(c)
	if len(s) > 16 {
		return s[:16]
	}
	return s
}

// printChange writes one file change: new files as all-added lines, changed
// files as their diff runs.
func printChange(w io.Writer, ch vcs.FileChange) {
	if ch.Added {
		fmt.Fprintf(w, "%s %s\n", ch.Path, addedStyle.Render("(new file)"))
		for _, line := range vcs.SplitLines(string(ch.Content)) {
			fmt.Fprintln(w, addedStyle.Render("+ "+line))
		}
		return
	}
	fmt.Fprintln(w, ch.Path)
	for _, run := range ch.Diff {
		for _, line := range run.Lines {
			switch run.Op {
			case vcs.DiffAdded:
				fmt.Fprintln(w, addedStyle.Render("+ "+line))
			case vcs.DiffRemoved:
				fmt.Fprintln(w, removedStyle.Render("- "+line))
			default:
				fmt.Fprintln(w, faintStyle.Render("  "+line))
			}
		}
	}
}
