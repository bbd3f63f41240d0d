package vcs

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies a run of lines in a line diff.
type DiffOp int

const (
	DiffUnchanged DiffOp = iota
	DiffAdded
	DiffRemoved
)

// DiffRun is a consecutive group of lines sharing one op.
type DiffRun struct {
	Op    DiffOp
	Lines []string
}

// DiffLines compares two text blobs line by line and returns the runs in
// document order.
func DiffLines(before, after string) []DiffRun {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var runs []DiffRun
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		run := DiffRun{Lines: SplitLines(d.Text)}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			run.Op = DiffAdded
		case diffmatchpatch.DiffDelete:
			run.Op = DiffRemoved
		default:
			run.Op = DiffUnchanged
		}
		runs = append(runs, run)
	}
	return runs
}

// SplitLines splits text into lines, ignoring a single trailing newline.
func SplitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
