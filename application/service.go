package application

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/tsoliangwu0130/revlens/domain"
	"github.com/tsoliangwu0130/revlens/infrastructure/remotes"
)

// DiffService resolves the previous comparison point for a file and hands
// the result to the diff-presentation surface. Terminal resolution outcomes
// (not tracked, no previous revision) are reported as informational
// messages, not failures.
type DiffService struct {
	resolver  *PreviousRevisionResolver
	presenter domain.DiffPresenter
}

// NewDiffService creates a new service with the given resolver and presenter.
func NewDiffService(resolver *PreviousRevisionResolver, presenter domain.DiffPresenter) *DiffService {
	return &DiffService{
		resolver:  resolver,
		presenter: presenter,
	}
}

// DiffWithPrevious resolves the query and presents the comparison.
func (s *DiffService) DiffWithPrevious(ctx context.Context, query domain.RevisionQuery) error {
	resolution, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotTracked):
			logger.Infof("%q is not under version control, unable to open compare", query.FilePath)
			return nil
		case errors.Is(err, domain.ErrNoPreviousRevision):
			logger.Infof("%q has no previous revision at this point", query.FilePath)
			return nil
		default:
			logger.Errorf(
				"Failed to resolve previous revision for %q in %q: %v",
				query.FilePath, query.RepoPath, err,
			)
			return fmt.Errorf("unable to resolve previous revision: %w", err)
		}
	}

	if resolution.WorkingDiff != nil {
		return s.presenter.PresentWorkingDiff(ctx, *resolution.WorkingDiff)
	}

	return s.presenter.PresentComparison(ctx, domain.DiffRequest{
		RepoPath: query.RepoPath,
		Left:     resolution.Comparison.Left,
		Right:    resolution.Comparison.Right,
		Line:     query.Line,
	})
}

// RemoteService lists a repository's remotes as structured descriptors.
type RemoteService struct {
	lister domain.RemoteLister
}

// NewRemoteService creates a new service with the given remote lister.
func NewRemoteService(lister domain.RemoteLister) *RemoteService {
	return &RemoteService{lister: lister}
}

// List fetches the raw remote listing and parses it into descriptors.
func (s *RemoteService) List(ctx context.Context, repoPath string) ([]domain.RemoteDescriptor, error) {
	listing, err := s.lister.RemoteListing(ctx, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes for %q: %w", repoPath, err)
	}
	return remotes.Parse(listing, repoPath), nil
}
