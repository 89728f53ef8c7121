package application

import (
	"context"

	"github.com/tsoliangwu0130/revlens/domain"
)

const (
	primaryLookupEntries  = 2
	recoveryLookupEntries = 3
)

// PreviousRevisionResolver determines, for a file at an optional starting
// revision, the correct "previous" comparison point: the commit to diff
// against, a staged/working-tree comparison, or a delegation to a plain
// working-vs-index diff. The branching policy is implemented as a short
// sequence of guards, each handling one concern of the decision tree.
type PreviousRevisionResolver struct {
	history domain.HistoryProvider
}

// NewPreviousRevisionResolver creates a resolver backed by the given
// history collaborator.
func NewPreviousRevisionResolver(history domain.HistoryProvider) *PreviousRevisionResolver {
	return &PreviousRevisionResolver{history: history}
}

// Resolve walks the decision tree for the query. It fails with
// domain.ErrNoPreviousRevision or domain.ErrNotTracked when resolution is
// impossible, and with a *domain.LookupError when a collaborator fails.
func (r *PreviousRevisionResolver) Resolve(
	ctx context.Context,
	query domain.RevisionQuery,
) (*domain.Resolution, error) {
	revision := query.StartingRevision
	if query.Commit != nil {
		revision = query.Commit.Revision
	}

	// Nothing can precede a revision at which the file did not exist.
	if revision == domain.RevisionDeletedOrMissing {
		return nil, domain.ErrNoPreviousRevision
	}

	// The staged sentinel is not a real revision: resolve history from the
	// working tree and remember the original intent.
	wantStaged := false
	if revision == domain.RevisionStagedUncommitted {
		wantStaged = true
		revision = domain.RevisionWorkingTree
	}

	target := query.Commit
	if target == nil || !target.IsFile || domain.IsUncommitted(target.Revision) {
		var err error
		target, err = r.findTargetCommit(ctx, query, revision)
		if err != nil {
			return nil, err
		}
	}

	// Working-tree disambiguation only applies when the query had no
	// concrete starting revision.
	if revision == domain.RevisionWorkingTree {
		resolution, handled, err := r.resolveWorkingTree(ctx, query, target, wantStaged)
		if err != nil {
			return nil, err
		}
		if handled {
			return resolution, nil
		}
	}

	return &domain.Resolution{Comparison: defaultComparison(target)}, nil
}

// findTargetCommit performs the primary history lookup, falling back to the
// rename-recovery lookup when a parent query at a rename boundary comes
// back empty.
func (r *PreviousRevisionResolver) findTargetCommit(
	ctx context.Context,
	query domain.RevisionQuery,
	revision string,
) (*domain.Commit, error) {
	// When the query comes from an open diff view showing N vs N-1, the
	// caller wants N-1 vs N-2: look one step further back.
	lookupRevision := revision
	askingParent := false
	if query.InDiffView && revision != domain.RevisionWorkingTree {
		lookupRevision = revision + "^"
		askingParent = true
	}

	entries, err := r.history.HistoryForFile(ctx, query.RepoPath, query.FilePath, domain.HistoryOptions{
		MaxEntries:       primaryLookupEntries,
		StartingRevision: lookupRevision,
		FollowRenames:    true,
	})
	if err != nil {
		return nil, domain.NewLookupError(query.RepoPath, query.FilePath, err)
	}

	if len(entries) > 0 {
		for i := range entries {
			if entries[i].Revision == lookupRevision {
				return &entries[i], nil
			}
		}
		return &entries[0], nil
	}

	if !askingParent {
		return nil, domain.ErrNotTracked
	}

	return r.recoverAcrossRename(ctx, query, revision)
}

// recoverAcrossRename retries an empty parent lookup from the original
// (pre-offset) revision. An empty parent result usually means a rename
// landed exactly at that boundary, so the entry one step back in the wider
// lookup is the real previous commit. Selecting "the second entry, else the
// first" is a heuristic inherited from the behavior this models; it is not
// proven correct for chained renames in quick succession.
func (r *PreviousRevisionResolver) recoverAcrossRename(
	ctx context.Context,
	query domain.RevisionQuery,
	revision string,
) (*domain.Commit, error) {
	entries, err := r.history.HistoryForFile(ctx, query.RepoPath, query.FilePath, domain.HistoryOptions{
		MaxEntries:       recoveryLookupEntries,
		StartingRevision: revision,
		FollowRenames:    true,
	})
	if err != nil {
		return nil, domain.NewLookupError(query.RepoPath, query.FilePath, err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNotTracked
	}

	target := &entries[0]
	if len(entries) > 1 {
		target = &entries[1]
	}
	if target.Revision == revision {
		// No actual movement: there is nothing before the starting point.
		return nil, domain.ErrNoPreviousRevision
	}
	return target, nil
}

// resolveWorkingTree disambiguates a working-tree query using the file's
// status. It reports handled=false when the caller should fall through to
// the default comparison.
func (r *PreviousRevisionResolver) resolveWorkingTree(
	ctx context.Context,
	query domain.RevisionQuery,
	target *domain.Commit,
	wantStaged bool,
) (*domain.Resolution, bool, error) {
	status, err := r.history.StatusForFile(ctx, query.RepoPath, query.FilePath)
	if err != nil {
		return nil, false, domain.NewLookupError(query.RepoPath, query.FilePath, err)
	}
	if status == nil {
		// Unmodified relative to the target commit.
		return nil, false, nil
	}

	switch {
	case wantStaged:
		return &domain.Resolution{Comparison: stagedIntentComparison(query, target)}, true, nil

	case status.HasIndexEntry:
		return &domain.Resolution{Comparison: stagedFileComparison(query, target)}, true, nil

	case !query.InDiffView:
		// Modified but not staged: a plain working-vs-index diff anchored at
		// the target commit says it all.
		return &domain.Resolution{WorkingDiff: &domain.WorkingDiffRequest{
			RepoPath:  query.RepoPath,
			FilePath:  query.FilePath,
			Reference: *target,
			Line:      query.Line,
		}}, true, nil
	}

	// Modified-unstaged inside a diff view: default comparison applies.
	return nil, false, nil
}

// stagedIntentComparison handles a query whose starting point was the
// staged sentinel: commit vs staged state, or one step further back when
// already inside a diff view.
func stagedIntentComparison(query domain.RevisionQuery, target *domain.Commit) *domain.ResolvedComparison {
	if query.InDiffView {
		return &domain.ResolvedComparison{
			Left:  previousSide(target),
			Right: domain.ComparisonSide{Revision: target.Revision, Path: target.Path},
		}
	}
	return &domain.ResolvedComparison{
		Left:  domain.ComparisonSide{Revision: target.Revision, Path: target.Path},
		Right: domain.ComparisonSide{Revision: domain.RevisionStagedUncommitted, Path: query.FilePath},
	}
}

// stagedFileComparison handles a working-tree query on a file with an index
// entry: staged state vs working tree, or commit vs staged state when
// already inside a diff view.
func stagedFileComparison(query domain.RevisionQuery, target *domain.Commit) *domain.ResolvedComparison {
	if query.InDiffView {
		return &domain.ResolvedComparison{
			Left:  domain.ComparisonSide{Revision: target.Revision, Path: target.Path},
			Right: domain.ComparisonSide{Revision: domain.RevisionStagedUncommitted, Path: target.Path},
		}
	}
	return &domain.ResolvedComparison{
		Left:  domain.ComparisonSide{Revision: domain.RevisionStagedUncommitted, Path: target.Path},
		Right: domain.ComparisonSide{Revision: domain.RevisionWorkingTree, Path: query.FilePath},
	}
}

// defaultComparison diffs the target commit against its own predecessor.
func defaultComparison(target *domain.Commit) *domain.ResolvedComparison {
	return &domain.ResolvedComparison{
		Left:  previousSide(target),
		Right: domain.ComparisonSide{Revision: target.Revision, Path: target.Path},
	}
}

// previousSide is the older side of a commit: its previous revision when
// known, else the deleted/missing sentinel.
func previousSide(target *domain.Commit) domain.ComparisonSide {
	path := target.PreviousPath
	if path == "" {
		path = target.Path
	}
	if target.PreviousRevision == "" {
		return domain.ComparisonSide{Revision: domain.RevisionDeletedOrMissing, Path: path}
	}
	return domain.ComparisonSide{Revision: target.PreviousRevision, Path: path}
}
