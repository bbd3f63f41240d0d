package vcs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	gocid "github.com/ipfs/go-cid"
)

// Index is the staging area: an ordered path -> digest list persisted as a
// whole-document JSON overwrite on every mutation. There is no locking, so
// concurrent invocations race read-modify-write and the last writer wins.
type Index struct {
	path string
}

// NewIndex creates an Index persisted at the given file path.
func NewIndex(path string) *Index {
	return &Index{path: path}
}

// Entries returns the staged entries in staging order. A missing index file
// reads as empty.
func (ix *Index) Entries() ([]FileEntry, error) {
	data, err := os.ReadFile(ix.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	var entries []FileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return entries, nil
}

// Stage records path -> digest. Re-staging a path replaces its entry in
// place, so paths stay unique and keep their first-staged position.
func (ix *Index) Stage(path string, digest gocid.Cid) error {
	entries, err := ix.Entries()
	if err != nil {
		return err
	}
	hash := DigestString(digest)
	replaced := false
	for i := range entries {
		if entries[i].FilePath == path {
			entries[i].FileHash = hash
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, FileEntry{FilePath: path, FileHash: hash})
	}
	return ix.write(entries)
}

// Clear empties the staging area.
func (ix *Index) Clear() error {
	return ix.write([]FileEntry{})
}

// IsEmpty reports whether nothing is staged.
func (ix *Index) IsEmpty() (bool, error) {
	entries, err := ix.Entries()
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

func (ix *Index) write(entries []FileEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := SafeWrite(ix.path, data, 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
