// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations, no mock
// frameworks.
package testdoubles

import (
	"context"

	"github.com/tsoliangwu0130/revlens/domain"
)

// ---------------------------------------------------------------------------
// SpyHistoryProvider
// ---------------------------------------------------------------------------

// HistoryCall records the arguments of one HistoryForFile invocation.
type HistoryCall struct {
	RepoPath string
	FilePath string
	Opts     domain.HistoryOptions
}

// SpyHistoryProvider implements domain.HistoryProvider as a configurable
// spy. HistoryResults are consumed one slice per call, in order, so a test
// can script an empty primary lookup followed by a non-empty recovery
// lookup. Configure the response fields for the methods your test
// exercises, then inspect the call-tracking fields to verify behavior.
type SpyHistoryProvider struct {
	// --- HistoryForFile ---
	HistoryResults [][]domain.Commit // consumed front to back; exhausted = empty
	HistoryErr     error
	// spy: every lookup that was issued
	HistoryCalls []HistoryCall

	// --- StatusForFile ---
	Status    *domain.FileStatus
	StatusErr error
	// spy: file paths whose status was requested
	StatusCalls []string
}

var _ domain.HistoryProvider = (*SpyHistoryProvider)(nil)

func (s *SpyHistoryProvider) HistoryForFile(
	_ context.Context, repoPath, filePath string, opts domain.HistoryOptions,
) ([]domain.Commit, error) {
	s.HistoryCalls = append(s.HistoryCalls, HistoryCall{
		RepoPath: repoPath,
		FilePath: filePath,
		Opts:     opts,
	})
	if s.HistoryErr != nil {
		return nil, s.HistoryErr
	}
	if len(s.HistoryResults) == 0 {
		return nil, nil
	}
	result := s.HistoryResults[0]
	s.HistoryResults = s.HistoryResults[1:]
	return result, nil
}

func (s *SpyHistoryProvider) StatusForFile(
	_ context.Context, _ string, filePath string,
) (*domain.FileStatus, error) {
	s.StatusCalls = append(s.StatusCalls, filePath)
	if s.StatusErr != nil {
		return nil, s.StatusErr
	}
	return s.Status, nil
}

// ---------------------------------------------------------------------------
// SpyRemoteLister
// ---------------------------------------------------------------------------

// SpyRemoteLister implements domain.RemoteLister with a canned listing.
type SpyRemoteLister struct {
	Listing    string
	ListingErr error
	// spy: repositories whose listing was requested
	ListingCalls []string
}

var _ domain.RemoteLister = (*SpyRemoteLister)(nil)

func (s *SpyRemoteLister) RemoteListing(_ context.Context, repoPath string) (string, error) {
	s.ListingCalls = append(s.ListingCalls, repoPath)
	return s.Listing, s.ListingErr
}

// ---------------------------------------------------------------------------
// SpyPresenter
// ---------------------------------------------------------------------------

// SpyPresenter implements domain.DiffPresenter, recording every request.
type SpyPresenter struct {
	PresentErr error
	// spy: received requests
	Comparisons  []domain.DiffRequest
	WorkingDiffs []domain.WorkingDiffRequest
}

var _ domain.DiffPresenter = (*SpyPresenter)(nil)

func (s *SpyPresenter) PresentComparison(_ context.Context, req domain.DiffRequest) error {
	s.Comparisons = append(s.Comparisons, req)
	return s.PresentErr
}

func (s *SpyPresenter) PresentWorkingDiff(_ context.Context, req domain.WorkingDiffRequest) error {
	s.WorkingDiffs = append(s.WorkingDiffs, req)
	return s.PresentErr
}

// ---------------------------------------------------------------------------
// Dummies
// ---------------------------------------------------------------------------

// DummyHistoryProvider is a no-op domain.HistoryProvider for tests that
// only need the interface satisfied.
type DummyHistoryProvider struct{}

var _ domain.HistoryProvider = (*DummyHistoryProvider)(nil)

func (*DummyHistoryProvider) HistoryForFile(
	_ context.Context, _, _ string, _ domain.HistoryOptions,
) ([]domain.Commit, error) {
	return nil, nil
}

func (*DummyHistoryProvider) StatusForFile(
	_ context.Context, _, _ string,
) (*domain.FileStatus, error) {
	return nil, nil
}

// DummyPresenter is a no-op domain.DiffPresenter.
type DummyPresenter struct{}

var _ domain.DiffPresenter = (*DummyPresenter)(nil)

func (*DummyPresenter) PresentComparison(_ context.Context, _ domain.DiffRequest) error {
	return nil
}

func (*DummyPresenter) PresentWorkingDiff(_ context.Context, _ domain.WorkingDiffRequest) error {
	return nil
}
