package domain

import "context"

// DiffPresenter is the outbound diff-presentation surface. This package
// only defines the request shapes; rendering is entirely up to the
// implementation.
type DiffPresenter interface {
	// PresentComparison shows the two resolved sides of a comparison.
	PresentComparison(ctx context.Context, req DiffRequest) error

	// PresentWorkingDiff shows a working-tree-vs-index comparison anchored
	// at the given reference commit.
	PresentWorkingDiff(ctx context.Context, req WorkingDiffRequest) error
}
