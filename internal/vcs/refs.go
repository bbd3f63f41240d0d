package vcs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gocid "github.com/ipfs/go-cid"
)

// DefaultBranch is the protected branch every repository starts on.
const DefaultBranch = "main"

// RefStore manages the mutable pointers of a repository: one tip file per
// branch under refs/heads/, the HEAD digest, and the current-branch name.
// Each pointer is a single-line raw text file; empty means unset.
type RefStore struct {
	headsDir    string
	headPath    string
	currentPath string
}

// NewRefStore creates a RefStore rooted at the repository data directory.
func NewRefStore(dir string) (*RefStore, error) {
	headsDir := filepath.Join(dir, "refs", "heads")
	if err := os.MkdirAll(headsDir, 0755); err != nil {
		return nil, fmt.Errorf("create refs dir: %w", err)
	}
	return &RefStore{
		headsDir:    headsDir,
		headPath:    filepath.Join(dir, "HEAD"),
		currentPath: filepath.Join(dir, "CURRENT_BRANCH"),
	}, nil
}

func (r *RefStore) branchPath(name string) string {
	return filepath.Join(r.headsDir, name)
}

// Head returns the digest of the checked-out commit, or gocid.Undef if none.
// A missing HEAD file reads as no commit yet.
func (r *RefStore) Head() (gocid.Cid, error) {
	c, err := readPointer(r.headPath)
	if errors.Is(err, fs.ErrNotExist) {
		return gocid.Undef, nil
	}
	return c, err
}

// SetHead records the digest of the checked-out commit.
func (r *RefStore) SetHead(c gocid.Cid) error {
	return writePointer(r.headPath, c)
}

// CurrentBranch returns the active branch name. An unreadable or empty
// CURRENT_BRANCH file soft-falls back to the default branch rather than
// erroring.
func (r *RefStore) CurrentBranch() string {
	data, err := os.ReadFile(r.currentPath)
	if err != nil {
		return DefaultBranch
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return DefaultBranch
	}
	return name
}

// SetCurrentBranch records the active branch name.
func (r *RefStore) SetCurrentBranch(name string) error {
	if err := SafeWrite(r.currentPath, []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("write current branch: %w", err)
	}
	return nil
}

// HasBranch checks if a branch ref file exists.
func (r *RefStore) HasBranch(name string) bool {
	_, err := os.Stat(r.branchPath(name))
	return err == nil
}

// CreateBranch creates a branch pointing at the current HEAD, or at nothing
// if there is no HEAD yet.
func (r *RefStore) CreateBranch(name string) error {
	if err := validateBranchName(name); err != nil {
		return err
	}
	if r.HasBranch(name) {
		return fmt.Errorf("branch %q: %w", name, ErrAlreadyExists)
	}
	head, err := r.Head()
	if err != nil {
		return err
	}
	return r.SetBranchTip(name, head)
}

// BranchTip returns the digest at the tip of a branch. A branch with no
// commits yet yields gocid.Undef.
func (r *RefStore) BranchTip(name string) (gocid.Cid, error) {
	c, err := readPointer(r.branchPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return gocid.Undef, fmt.Errorf("branch %q: %w", name, ErrNotFound)
	}
	return c, err
}

// SetBranchTip points a branch at the given digest.
func (r *RefStore) SetBranchTip(name string, c gocid.Cid) error {
	return writePointer(r.branchPath(name), c)
}

// ListBranches returns all branch names, sorted.
func (r *RefStore) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(r.headsDir)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// DeleteBranch removes a branch ref. The active branch and the default
// branch are protected.
func (r *RefStore) DeleteBranch(name string) error {
	if name == r.CurrentBranch() {
		return fmt.Errorf("cannot delete the current branch %q: %w", name, ErrInvalidOperation)
	}
	if name == DefaultBranch {
		return fmt.Errorf("cannot delete the protected branch %q: %w", name, ErrInvalidOperation)
	}
	if !r.HasBranch(name) {
		return fmt.Errorf("branch %q: %w", name, ErrNotFound)
	}
	if err := os.Remove(r.branchPath(name)); err != nil {
		return fmt.Errorf("delete branch %q: %w", name, err)
	}
	return nil
}

func validateBranchName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("invalid branch name %q: %w", name, ErrInvalidOperation)
	}
	return nil
}

// readPointer reads a single-line digest file. Empty content means unset.
// A missing file surfaces fs.ErrNotExist for the caller to classify.
func readPointer(path string) (gocid.Cid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gocid.Undef, err
		}
		return gocid.Undef, fmt.Errorf("read ref %s: %w", path, err)
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return gocid.Undef, nil
	}
	c, err := ParseDigest(s)
	if err != nil {
		return gocid.Undef, fmt.Errorf("ref %s: %w", path, err)
	}
	return c, nil
}

func writePointer(path string, c gocid.Cid) error {
	content := ""
	if c != gocid.Undef {
		content = DigestString(c) + "\n"
	}
	if err := SafeWrite(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write ref %s: %w", path, err)
	}
	return nil
}
