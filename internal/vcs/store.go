package vcs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// ObjectStore manages digest-addressed immutable objects on disk. Blobs and
// commits share the same address space: both are stored as raw bytes under
// objects/<digest>, and a digest is always the hash of the stored bytes.
type ObjectStore struct {
	dir string // path to objects/ directory
}

// NewObjectStore creates an ObjectStore at the given directory.
func NewObjectStore(dir string) (*ObjectStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create objects dir: %w", err)
	}
	return &ObjectStore{dir: dir}, nil
}

// ComputeDigest computes a CIDv1 (raw codec, SHA2-256) for the given data.
func ComputeDigest(data []byte) (gocid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return gocid.Undef, fmt.Errorf("multihash: %w", err)
	}
	return gocid.NewCidV1(gocid.Raw, mh), nil
}

// DigestString returns the base32lower rendering of a digest, used both as
// the object filename and as the digest's wire form in commits and refs.
func DigestString(c gocid.Cid) string {
	encoded, _ := multibase.Encode(multibase.Base32, c.Bytes())
	return encoded
}

// ParseDigest decodes a digest string back to its binary form.
func ParseDigest(s string) (gocid.Cid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return gocid.Undef, errors.New("empty digest")
	}
	_, raw, err := multibase.Decode(s)
	if err != nil {
		return gocid.Undef, fmt.Errorf("decode digest: %w", err)
	}
	c, err := gocid.Cast(raw)
	if err != nil {
		return gocid.Undef, fmt.Errorf("parse digest: %w", err)
	}
	return c, nil
}

// Put writes data to the object store, returning the digest.
// If the object already exists, this is a no-op.
func (s *ObjectStore) Put(data []byte) (gocid.Cid, error) {
	c, err := ComputeDigest(data)
	if err != nil {
		return gocid.Undef, err
	}
	path := filepath.Join(s.dir, DigestString(c))
	if _, err := os.Stat(path); err == nil {
		return c, nil // already exists
	}
	if err := SafeWrite(path, data, 0644); err != nil {
		return gocid.Undef, fmt.Errorf("write object: %w", err)
	}
	return c, nil
}

// Get reads an object by digest.
func (s *ObjectStore) Get(c gocid.Cid) ([]byte, error) {
	path := filepath.Join(s.dir, DigestString(c))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("object %s: %w", DigestString(c), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", DigestString(c), err)
	}
	return data, nil
}

// Has checks if an object exists.
func (s *ObjectStore) Has(c gocid.Cid) bool {
	path := filepath.Join(s.dir, DigestString(c))
	_, err := os.Stat(path)
	return err == nil
}
