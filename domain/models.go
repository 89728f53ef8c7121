package domain

import "strings"

// Sentinel revisions. These are reserved marker values, not real commit
// hashes: the all-zero sha denotes an uncommitted state, with a suffix
// distinguishing the staged variant from a deleted/missing file. The empty
// string stands for the unstaged working tree.
const (
	RevisionWorkingTree       = ""
	RevisionUncommitted       = "0000000000000000000000000000000000000000"
	RevisionStagedUncommitted = "0000000000000000000000000000000000000000:"
	RevisionDeletedOrMissing  = "0000000000000000000000000000000000000000-"
)

// IsUncommitted returns true if the revision does not denote a real commit:
// the working tree, the staged area, or the bare uncommitted marker.
func IsUncommitted(revision string) bool {
	return revision == RevisionWorkingTree ||
		strings.HasPrefix(revision, RevisionUncommitted)
}

// RemoteDescriptor is one parsed remote of a repository. A remote that
// supports several operations over the same URL is represented by a single
// descriptor carrying all its capability tags.
type RemoteDescriptor struct {
	RepoPath     string
	Name         string   // short name, e.g. "origin"
	URL          string   // raw connection string as reported by git
	Host         string   // network authority extracted from URL
	ResourcePath string   // URL path with any trailing ".git" stripped
	Capabilities []string // e.g. "fetch", "push", in order of appearance
}

// Commit is one entry of a file history lookup. Path and PreviousPath may
// differ when the file was renamed between the two revisions.
type Commit struct {
	RepoPath         string
	Revision         string
	PreviousRevision string // empty when the commit has no known predecessor
	Path             string
	PreviousPath     string
	IsFile           bool // fully resolved single-file commit
}

// HistoryOptions controls a HistoryForFile lookup.
type HistoryOptions struct {
	MaxEntries       int
	StartingRevision string // empty = working tree / HEAD
	FollowRenames    bool
}

// FileStatus describes a file's working-tree state. A nil *FileStatus from
// the collaborator means the file is unmodified.
type FileStatus struct {
	HasIndexEntry      bool // staged changes exist
	WorkingTreeChanged bool // unstaged changes exist
}

// RevisionQuery is the input to the previous-revision resolution.
type RevisionQuery struct {
	RepoPath         string
	FilePath         string
	StartingRevision string  // optional; empty resolves against the working tree
	Commit           *Commit // optional pre-resolved commit; skips the lookup when usable
	InDiffView       bool    // query originates from an already-open diff view
	Line             int     // best-effort cursor position, not correctness-critical
}

// ComparisonSide is one half of a resolved comparison: a revision (or
// sentinel) plus the file's path at that revision.
type ComparisonSide struct {
	Revision string
	Path     string
}

// ResolvedComparison is the resolver's primary output. Left is always the
// older state and Right the newer one, regardless of which direction the
// originating diff view was showing.
type ResolvedComparison struct {
	Left  ComparisonSide
	Right ComparisonSide
}

// WorkingDiffRequest asks the working-tree-diff collaborator to compare the
// working tree against the index, using Reference as the anchor commit.
type WorkingDiffRequest struct {
	RepoPath  string
	FilePath  string
	Reference Commit
	Line      int
}

// Resolution is the tagged outcome of a resolve call: either a concrete
// comparison, or a delegation to the working-tree-diff collaborator.
// Exactly one field is set.
type Resolution struct {
	Comparison  *ResolvedComparison
	WorkingDiff *WorkingDiffRequest
}

// DiffRequest packages a resolved comparison for the diff-presentation
// surface.
type DiffRequest struct {
	RepoPath string
	Left     ComparisonSide
	Right    ComparisonSide
	Line     int
}
