package domain

import (
	"errors"
	"fmt"
)

// Terminal resolution outcomes. Both are user-facing informational
// conditions, not crashes.
var (
	// ErrNotTracked means the file has no history at this path.
	ErrNotTracked = errors.New("file is not under version control")

	// ErrNoPreviousRevision means the history is valid but nothing precedes
	// the requested point.
	ErrNoPreviousRevision = errors.New("no previous revision")
)

// LookupError wraps an I/O failure from a history or status collaborator,
// keeping the repository and file context for diagnostics.
type LookupError struct {
	RepoPath string
	FilePath string
	Err      error
}

// NewLookupError wraps err with repository and file context.
func NewLookupError(repoPath, filePath string, err error) *LookupError {
	return &LookupError{RepoPath: repoPath, FilePath: filePath, Err: err}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("revision lookup failed for %q in %q: %v", e.FilePath, e.RepoPath, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
