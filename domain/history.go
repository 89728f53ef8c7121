package domain

import "context"

// HistoryProvider abstracts the version-control queries the resolver needs.
// Implementations read a local repository; the resolver never touches the
// repository itself.
type HistoryProvider interface {
	// HistoryForFile returns up to opts.MaxEntries commit records for the
	// file, most recent first, starting at opts.StartingRevision (or the
	// working tree when empty). A nil/empty slice means the file has no
	// history at this path.
	HistoryForFile(ctx context.Context, repoPath, filePath string, opts HistoryOptions) ([]Commit, error)

	// StatusForFile returns the file's working-tree status, or nil when the
	// file is unmodified.
	StatusForFile(ctx context.Context, repoPath, filePath string) (*FileStatus, error)
}

// RemoteLister reports a repository's configured remotes as raw listing
// text, one "<name>\t<url> (<capability>)" line per remote-capability pair.
type RemoteLister interface {
	RemoteListing(ctx context.Context, repoPath string) (string, error)
}
