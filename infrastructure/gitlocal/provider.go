// Package gitlocal implements the history, status, and remote-listing
// collaborators against a local on-disk repository using go-git.
package gitlocal

import (
	"context"
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/tsoliangwu0130/revlens/domain"
)

// Provider reads local repositories. It holds no state across calls; each
// invocation opens the repository it needs.
type Provider struct{}

// New creates a new local git provider.
func New() *Provider {
	return &Provider{}
}

var (
	_ domain.HistoryProvider = (*Provider)(nil)
	_ domain.RemoteLister    = (*Provider)(nil)
)

func (p *Provider) open(repoPath string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", repoPath, err)
	}
	return repo, nil
}

// HistoryForFile walks the commit log restricted to the given file,
// starting at opts.StartingRevision (HEAD when empty). A revision that
// cannot be resolved, typically a parent reference past the root commit,
// yields an empty history rather than an error, matching how the resolver
// distinguishes "nothing there" from an I/O failure.
func (p *Provider) HistoryForFile(
	_ context.Context,
	repoPath, filePath string,
	opts domain.HistoryOptions,
) ([]domain.Commit, error) {
	repo, err := p.open(repoPath)
	if err != nil {
		return nil, err
	}

	relPath, err := relativePath(repoPath, filePath)
	if err != nil {
		return nil, err
	}

	logOpts := &git.LogOptions{
		FileName: &relPath,
		Order:    git.LogOrderCommitterTime,
	}
	if opts.StartingRevision != "" {
		hash, resolveErr := repo.ResolveRevision(plumbing.Revision(opts.StartingRevision))
		if resolveErr != nil {
			logger.Debugf(
				"Revision %q not resolvable in %q: %v",
				opts.StartingRevision, repoPath, resolveErr,
			)
			return nil, nil
		}
		logOpts.From = *hash
	}

	iter, err := repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to read log for %q: %w", relPath, err)
	}
	defer iter.Close()

	var entries []domain.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if len(entries) >= opts.MaxEntries {
			return storer.ErrStop
		}
		entries = append(entries, commitRecord(repoPath, relPath, c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk log for %q: %w", relPath, err)
	}

	return entries, nil
}

// StatusForFile returns the file's index/working-tree flags, or nil when
// the file carries no pending changes.
func (p *Provider) StatusForFile(
	_ context.Context,
	repoPath, filePath string,
) (*domain.FileStatus, error) {
	repo, err := p.open(repoPath)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree of %q: %w", repoPath, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status of %q: %w", repoPath, err)
	}

	relPath, err := relativePath(repoPath, filePath)
	if err != nil {
		return nil, err
	}

	entry, ok := status[relPath]
	if !ok {
		return nil, nil
	}
	return statusRecord(entry), nil
}

// commitRecord maps a go-git commit onto the domain record. The previous
// revision is the first parent; go-git's path filter does not rewrite
// renamed paths, so both locators carry the queried path.
func commitRecord(repoPath, relPath string, c *object.Commit) domain.Commit {
	previous := ""
	if c.NumParents() > 0 {
		previous = c.ParentHashes[0].String()
	}
	return domain.Commit{
		RepoPath:         repoPath,
		Revision:         c.Hash.String(),
		PreviousRevision: previous,
		Path:             relPath,
		PreviousPath:     relPath,
		IsFile:           true,
	}
}

// statusRecord maps go-git status codes onto the domain flags, or nil when
// both sides are unmodified.
func statusRecord(entry *git.FileStatus) *domain.FileStatus {
	staged := entry.Staging != git.Unmodified && entry.Staging != git.Untracked
	changed := entry.Worktree != git.Unmodified
	if !staged && !changed {
		return nil
	}
	return &domain.FileStatus{
		HasIndexEntry:      staged,
		WorkingTreeChanged: changed,
	}
}

// relativePath normalizes a possibly-absolute file path to the
// slash-separated repository-relative form go-git expects.
func relativePath(repoPath, filePath string) (string, error) {
	if !filepath.IsAbs(filePath) {
		return filepath.ToSlash(filePath), nil
	}
	rel, err := filepath.Rel(repoPath, filePath)
	if err != nil {
		return "", fmt.Errorf("%q is not inside repository %q: %w", filePath, repoPath, err)
	}
	return filepath.ToSlash(rel), nil
}
