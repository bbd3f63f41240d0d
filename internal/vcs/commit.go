package vcs

import "time"

// FileEntry maps a working-tree path to the digest of its content. The same
// record is the staging index entry and the per-commit file list element.
type FileEntry struct {
	FilePath string `json:"filePath"`
	FileHash string `json:"fileHash"`
}

// CommitObject is an immutable snapshot of the staged file list at a point
// in time. Serialized via CanonicalJSON and stored in the ObjectStore like
// any blob; its digest covers the parent link, so rewriting history always
// produces new digests.
type CommitObject struct {
	V           int         `json:"v"`
	Timestamp   time.Time   `json:"timestamp"`
	Message     string      `json:"message"`
	Files       []FileEntry `json:"files"`
	Parent      string      `json:"parent,omitempty"`      // digest of first parent, "" for a root commit
	MergeParent string      `json:"mergeParent,omitempty"` // digest of the merged-in tip, set only by merge
}
