package vcs

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"

	gocid "github.com/ipfs/go-cid"
)

// CommitLog creates and reads commit objects in the ObjectStore. It owns no
// mutable state of its own; HEAD and branch tips live in the RefStore.
type CommitLog struct {
	store *ObjectStore
}

// NewCommitLog creates a CommitLog backed by the given store.
func NewCommitLog(store *ObjectStore) *CommitLog {
	return &CommitLog{store: store}
}

// CreateCommit serializes a new commit and stores it, returning its digest.
// parent and mergeParent may be gocid.Undef (root commit / non-merge commit).
func (cl *CommitLog) CreateCommit(message string, files []FileEntry, parent, mergeParent gocid.Cid) (gocid.Cid, error) {
	if files == nil {
		files = []FileEntry{}
	}
	commit := &CommitObject{
		V:         1,
		Timestamp: time.Now().UTC(),
		Message:   message,
		Files:     files,
	}
	if parent != gocid.Undef {
		commit.Parent = DigestString(parent)
	}
	if mergeParent != gocid.Undef {
		commit.MergeParent = DigestString(mergeParent)
	}

	data, err := CanonicalJSON(commit)
	if err != nil {
		return gocid.Undef, fmt.Errorf("serialize commit: %w", err)
	}
	c, err := cl.store.Put(data)
	if err != nil {
		return gocid.Undef, fmt.Errorf("store commit: %w", err)
	}
	return c, nil
}

// GetCommit reads and unmarshals a commit by digest.
func (cl *CommitLog) GetCommit(c gocid.Cid) (*CommitObject, error) {
	data, err := cl.store.Get(c)
	if err != nil {
		return nil, err
	}
	var commit CommitObject
	if err := json.Unmarshal(data, &commit); err != nil {
		return nil, fmt.Errorf("unmarshal commit: %w", err)
	}
	return &commit, nil
}

// History walks the chain from start, newest first, following only first
// parents. Merge parents are never traversed, so log output after a merge
// shows one side of history. The sequence is lazy and can be re-ranged;
// a broken link terminates the walk.
func (cl *CommitLog) History(start gocid.Cid) iter.Seq2[gocid.Cid, *CommitObject] {
	return func(yield func(gocid.Cid, *CommitObject) bool) {
		current := start
		for current != gocid.Undef {
			commit, err := cl.GetCommit(current)
			if err != nil {
				return
			}
			if !yield(current, commit) {
				return
			}
			if commit.Parent == "" {
				return
			}
			next, err := ParseDigest(commit.Parent)
			if err != nil {
				return
			}
			current = next
		}
	}
}
