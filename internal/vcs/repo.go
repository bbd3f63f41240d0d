package vcs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocid "github.com/ipfs/go-cid"
)

// RepoDirName is the repository marker directory created by Init.
const RepoDirName = ".grit"

// Repository is the top-level facade over the object store, staging index,
// commit log, and reference store. Operations compose the four stores as
// strictly sequential pipelines; durable writes during commit/merge/reset
// happen in a fixed order (object, HEAD, branch ref, index) so a crash
// leaves the repository behind rather than inconsistent-ahead.
type Repository struct {
	root    string
	Store   *ObjectStore
	Index   *Index
	Commits *CommitLog
	Refs    *RefStore
}

// Init creates a repository at root. The second return value reports
// whether a new repository was created; running init inside an existing
// repository is a no-op.
func Init(root string) (*Repository, bool, error) {
	dataDir := filepath.Join(root, RepoDirName)
	if _, err := os.Stat(dataDir); err == nil {
		repo, err := Open(root)
		return repo, false, err
	}

	for _, dir := range []string{
		dataDir,
		filepath.Join(dataDir, "objects"),
		filepath.Join(dataDir, "refs", "heads"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, false, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	meta := map[string]interface{}{
		"version": 1,
		"created": time.Now().UTC().Format(time.RFC3339),
	}
	data, _ := json.MarshalIndent(meta, "", "  ")
	if err := SafeWrite(filepath.Join(dataDir, "meta.json"), data, 0644); err != nil {
		return nil, false, err
	}

	repo, err := Open(root)
	if err != nil {
		return nil, false, err
	}
	if err := repo.Refs.SetHead(gocid.Undef); err != nil {
		return nil, false, err
	}
	if err := repo.Refs.SetCurrentBranch(DefaultBranch); err != nil {
		return nil, false, err
	}
	if err := repo.Refs.SetBranchTip(DefaultBranch, gocid.Undef); err != nil {
		return nil, false, err
	}
	return repo, true, nil
}

// Open opens an existing repository at root.
func Open(root string) (*Repository, error) {
	dataDir := filepath.Join(root, RepoDirName)
	if _, err := os.Stat(dataDir); err != nil {
		return nil, fmt.Errorf("no repository at %s (run \"grit init\"): %w", root, ErrNotFound)
	}
	store, err := NewObjectStore(filepath.Join(dataDir, "objects"))
	if err != nil {
		return nil, err
	}
	refs, err := NewRefStore(dataDir)
	if err != nil {
		return nil, err
	}
	return &Repository{
		root:    root,
		Store:   store,
		Index:   NewIndex(filepath.Join(dataDir, "index")),
		Commits: NewCommitLog(store),
		Refs:    refs,
	}, nil
}

// Add hashes the working file at path into the object store and stages it.
// If the file is unreadable nothing is staged.
func (r *Repository) Add(path string) (gocid.Cid, error) {
	content, err := os.ReadFile(filepath.Join(r.root, path))
	if err != nil {
		return gocid.Undef, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := r.Store.Put(content)
	if err != nil {
		return gocid.Undef, err
	}
	if err := r.Index.Stage(path, c); err != nil {
		return gocid.Undef, err
	}
	return c, nil
}

// Commit freezes the staging index into a new commit, advances HEAD and the
// current branch tip, and clears the index. Returns ErrNothingStaged when
// the index is empty; no state is touched in that case.
func (r *Repository) Commit(message string) (gocid.Cid, error) {
	entries, err := r.Index.Entries()
	if err != nil {
		return gocid.Undef, err
	}
	if len(entries) == 0 {
		return gocid.Undef, ErrNothingStaged
	}
	parent, err := r.Refs.Head()
	if err != nil {
		return gocid.Undef, err
	}
	c, err := r.Commits.CreateCommit(message, entries, parent, gocid.Undef)
	if err != nil {
		return gocid.Undef, err
	}
	if err := r.advance(c); err != nil {
		return gocid.Undef, err
	}
	if err := r.Index.Clear(); err != nil {
		return gocid.Undef, err
	}
	return c, nil
}

// advance points HEAD and the current branch tip at c, HEAD first.
func (r *Repository) advance(c gocid.Cid) error {
	if err := r.Refs.SetHead(c); err != nil {
		return err
	}
	return r.Refs.SetBranchTip(r.Refs.CurrentBranch(), c)
}

// LogEntry pairs a commit with its digest for display.
type LogEntry struct {
	Digest gocid.Cid
	Commit *CommitObject
}

// Log returns first-parent history from HEAD, newest first. An absent HEAD
// yields an empty log, not an error.
func (r *Repository) Log() ([]LogEntry, error) {
	head, err := r.Refs.Head()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for c, commit := range r.Commits.History(head) {
		entries = append(entries, LogEntry{Digest: c, Commit: commit})
	}
	return entries, nil
}

// FileChange describes one file of a snapshot relative to an older file
// list: either newly added (full content) or changed (line diff).
type FileChange struct {
	Path    string
	Added   bool
	Content []byte    // full content when Added
	Diff    []DiffRun // line diff otherwise
}

// Show fetches a commit and computes each file's change against the first
// parent. With no parent every file reports as newly added.
func (r *Repository) Show(hash string) (*CommitObject, []FileChange, error) {
	c, err := ParseDigest(hash)
	if err != nil {
		return nil, nil, fmt.Errorf("commit %q: %w", hash, ErrNotFound)
	}
	commit, err := r.Commits.GetCommit(c)
	if err != nil {
		return nil, nil, err
	}

	var parentFiles []FileEntry
	if commit.Parent != "" {
		pc, err := ParseDigest(commit.Parent)
		if err != nil {
			return nil, nil, fmt.Errorf("parent of %q: %w", hash, err)
		}
		parent, err := r.Commits.GetCommit(pc)
		if err != nil {
			return nil, nil, err
		}
		parentFiles = parent.Files
	}

	changes, err := r.changesAgainst(parentFiles, commit.Files)
	if err != nil {
		return nil, nil, err
	}
	return commit, changes, nil
}

// Status reports the current branch name and the staged entries.
func (r *Repository) Status() (string, []FileEntry, error) {
	entries, err := r.Index.Entries()
	if err != nil {
		return "", nil, err
	}
	return r.Refs.CurrentBranch(), entries, nil
}

// Branches lists all branch names and the current one.
func (r *Repository) Branches() ([]string, string, error) {
	names, err := r.Refs.ListBranches()
	if err != nil {
		return nil, "", err
	}
	return names, r.Refs.CurrentBranch(), nil
}

// CreateBranch creates a branch at the current HEAD.
func (r *Repository) CreateBranch(name string) error {
	return r.Refs.CreateBranch(name)
}

// DeleteBranch removes a branch, honoring the protection rules.
func (r *Repository) DeleteBranch(name string) error {
	return r.Refs.DeleteBranch(name)
}

// Checkout switches to a branch. Any staged state blocks the switch,
// whether or not it would conflict with the target.
func (r *Repository) Checkout(name string) error {
	empty, err := r.Index.IsEmpty()
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("uncommitted changes staged, commit or reset first: %w", ErrInvalidOperation)
	}
	tip, err := r.Refs.BranchTip(name)
	if err != nil {
		return err
	}
	if err := r.Refs.SetHead(tip); err != nil {
		return err
	}
	return r.Refs.SetCurrentBranch(name)
}

// Merge records a merge commit that adopts the target branch's file list
// wholesale: files are the target tip's list verbatim, parent is the current
// HEAD, mergeParent is the target tip. There is no union and no conflict
// detection. Returns ErrUpToDate when the target tip already equals HEAD.
func (r *Repository) Merge(name string) (gocid.Cid, error) {
	current := r.Refs.CurrentBranch()
	if name == current {
		return gocid.Undef, fmt.Errorf("cannot merge branch %q into itself: %w", name, ErrInvalidOperation)
	}
	tip, err := r.Refs.BranchTip(name)
	if err != nil {
		return gocid.Undef, err
	}
	if tip == gocid.Undef {
		return gocid.Undef, fmt.Errorf("branch %q has no commits: %w", name, ErrInvalidOperation)
	}
	head, err := r.Refs.Head()
	if err != nil {
		return gocid.Undef, err
	}
	if tip == head {
		return gocid.Undef, ErrUpToDate
	}
	target, err := r.Commits.GetCommit(tip)
	if err != nil {
		return gocid.Undef, err
	}
	message := fmt.Sprintf("merge branch %q into %q", name, current)
	c, err := r.Commits.CreateCommit(message, target.Files, head, tip)
	if err != nil {
		return gocid.Undef, err
	}
	if err := r.advance(c); err != nil {
		return gocid.Undef, err
	}
	return c, nil
}

// Reset moves HEAD and the current branch tip to an existing commit and
// discards all staged state, with no confirmation step.
func (r *Repository) Reset(hash string) error {
	c, err := ParseDigest(hash)
	if err != nil {
		return fmt.Errorf("commit %q: %w", hash, ErrNotFound)
	}
	if _, err := r.Commits.GetCommit(c); err != nil {
		return err
	}
	if err := r.advance(c); err != nil {
		return err
	}
	return r.Index.Clear()
}

// Diff compares each staged entry against the HEAD commit's version of the
// same path; a path absent from HEAD reports as newly added. Returns
// ErrNothingStaged when the index is empty.
func (r *Repository) Diff() ([]FileChange, error) {
	entries, err := r.Index.Entries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNothingStaged
	}

	var headFiles []FileEntry
	head, err := r.Refs.Head()
	if err != nil {
		return nil, err
	}
	if head != gocid.Undef {
		commit, err := r.Commits.GetCommit(head)
		if err != nil {
			return nil, err
		}
		headFiles = commit.Files
	}
	return r.changesAgainst(headFiles, entries)
}

// changesAgainst computes per-file changes of newFiles relative to oldFiles.
func (r *Repository) changesAgainst(oldFiles, newFiles []FileEntry) ([]FileChange, error) {
	var changes []FileChange
	for _, f := range newFiles {
		digest, err := ParseDigest(f.FileHash)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", f.FilePath, err)
		}
		content, err := r.Store.Get(digest)
		if err != nil {
			return nil, err
		}

		prev, ok := findEntry(oldFiles, f.FilePath)
		if !ok {
			changes = append(changes, FileChange{Path: f.FilePath, Added: true, Content: content})
			continue
		}
		prevDigest, err := ParseDigest(prev.FileHash)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", f.FilePath, err)
		}
		prevContent, err := r.Store.Get(prevDigest)
		if err != nil {
			return nil, err
		}
		changes = append(changes, FileChange{
			Path: f.FilePath,
			Diff: DiffLines(string(prevContent), string(content)),
		})
	}
	return changes, nil
}

func findEntry(entries []FileEntry, path string) (FileEntry, bool) {
	for _, e := range entries {
		if e.FilePath == path {
			return e, true
		}
	}
	return FileEntry{}, false
}
