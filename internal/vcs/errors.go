package vcs

import "errors"

// Sentinel errors for the repository error taxonomy. Callers match them
// with errors.Is; operations wrap them with context via fmt.Errorf and %w.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Empty-operation outcomes. These are notices, not failures: the CLI
// reports them and exits zero.
var (
	ErrNothingStaged = errors.New("nothing staged")
	ErrUpToDate      = errors.New("already up to date")
)
