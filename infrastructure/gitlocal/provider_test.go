package gitlocal //nolint:testpackage // tests unexported helpers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsoliangwu0130/revlens/domain"
)

// --- helpers ---

func initRepo(t *testing.T) (string, *git.Worktree, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	return dir, worktree, repo
}

func commitFile(
	t *testing.T,
	dir string,
	worktree *git.Worktree,
	name, content, message string,
	when time.Time,
) plumbing.Hash {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	_, err := worktree.Add(name)
	require.NoError(t, err)
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: when},
	})
	require.NoError(t, err)
	return hash
}

// --- tests ---

func TestProvider_HistoryForFile(t *testing.T) {
	t.Parallel()

	t.Run("should return commits newest first with previous-revision linkage", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		first := commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)
		second := commitFile(t, dir, worktree, "a.txt", "two\n", "second", base.Add(time.Hour))

		// when
		entries, err := New().HistoryForFile(context.Background(), dir, "a.txt", domain.HistoryOptions{
			MaxEntries: 2,
		})

		// then
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, second.String(), entries[0].Revision)
		assert.Equal(t, first.String(), entries[0].PreviousRevision)
		assert.Equal(t, first.String(), entries[1].Revision)
		assert.Empty(t, entries[1].PreviousRevision)
		assert.True(t, entries[0].IsFile)
	})

	t.Run("should cap the number of entries", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)
		second := commitFile(t, dir, worktree, "a.txt", "two\n", "second", base.Add(time.Hour))

		// when
		entries, err := New().HistoryForFile(context.Background(), dir, "a.txt", domain.HistoryOptions{
			MaxEntries: 1,
		})

		// then
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, second.String(), entries[0].Revision)
	})

	t.Run("should start the walk at the given revision", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		first := commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)
		second := commitFile(t, dir, worktree, "a.txt", "two\n", "second", base.Add(time.Hour))

		// when
		entries, err := New().HistoryForFile(context.Background(), dir, "a.txt", domain.HistoryOptions{
			MaxEntries:       2,
			StartingRevision: second.String() + "^",
		})

		// then
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, first.String(), entries[0].Revision)
	})

	t.Run("should yield empty history for an unresolvable revision", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		root := commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)

		// when: the root commit has no parent
		entries, err := New().HistoryForFile(context.Background(), dir, "a.txt", domain.HistoryOptions{
			MaxEntries:       2,
			StartingRevision: root.String() + "^",
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should yield empty history for a file that was never committed", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)

		// when
		entries, err := New().HistoryForFile(context.Background(), dir, "b.txt", domain.HistoryOptions{
			MaxEntries: 2,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should fail for a directory that is not a repository", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := New().HistoryForFile(context.Background(), t.TempDir(), "a.txt", domain.HistoryOptions{
			MaxEntries: 2,
		})

		// then
		require.Error(t, err)
	})
}

func TestProvider_StatusForFile(t *testing.T) {
	t.Parallel()

	t.Run("should report nil for an unmodified file", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)

		// when
		status, err := New().StatusForFile(context.Background(), dir, "a.txt")

		// then
		require.NoError(t, err)
		assert.Nil(t, status)
	})

	t.Run("should report working-tree changes for an unstaged edit", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed\n"), 0o600))

		// when
		status, err := New().StatusForFile(context.Background(), dir, "a.txt")

		// then
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.False(t, status.HasIndexEntry)
		assert.True(t, status.WorkingTreeChanged)
	})

	t.Run("should report an index entry for a staged edit", func(t *testing.T) {
		t.Parallel()

		// given
		dir, worktree, _ := initRepo(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		commitFile(t, dir, worktree, "a.txt", "one\n", "first", base)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed\n"), 0o600))
		_, err := worktree.Add("a.txt")
		require.NoError(t, err)

		// when
		status, statusErr := New().StatusForFile(context.Background(), dir, "a.txt")

		// then
		require.NoError(t, statusErr)
		require.NotNil(t, status)
		assert.True(t, status.HasIndexEntry)
	})
}

func TestProvider_RemoteListing(t *testing.T) {
	t.Parallel()

	t.Run("should render remotes in the listing line format", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _, repo := initRepo(t)
		_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://host/a/b.git"},
		})
		require.NoError(t, err)

		// when
		listing, listErr := New().RemoteListing(context.Background(), dir)

		// then
		require.NoError(t, listErr)
		assert.Equal(t,
			"origin\thttps://host/a/b.git (fetch)\norigin\thttps://host/a/b.git (push)\n",
			listing,
		)
	})
}

func TestFormatListing(t *testing.T) {
	t.Parallel()

	t.Run("should order remotes by name and expand push URLs", func(t *testing.T) {
		t.Parallel()

		// given
		configs := []*gitconfig.RemoteConfig{
			{Name: "upstream", URLs: []string{"git@host:c/d.git"}},
			{Name: "origin", URLs: []string{"https://host/a/b.git", "git@mirror:a/b.git"}},
		}

		// when
		listing := formatListing(configs)

		// then
		assert.Equal(t,
			"origin\thttps://host/a/b.git (fetch)\n"+
				"origin\thttps://host/a/b.git (push)\n"+
				"origin\tgit@mirror:a/b.git (push)\n"+
				"upstream\tgit@host:c/d.git (fetch)\n"+
				"upstream\tgit@host:c/d.git (push)\n",
			listing,
		)
	})

	t.Run("should skip remotes without URLs", func(t *testing.T) {
		t.Parallel()

		// when
		listing := formatListing([]*gitconfig.RemoteConfig{{Name: "empty"}})

		// then
		assert.Empty(t, listing)
	})
}

func TestStatusRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry git.FileStatus
		want  *domain.FileStatus
	}{
		{
			name:  "unmodified",
			entry: git.FileStatus{Staging: git.Unmodified, Worktree: git.Unmodified},
			want:  nil,
		},
		{
			name:  "modified unstaged",
			entry: git.FileStatus{Staging: git.Unmodified, Worktree: git.Modified},
			want:  &domain.FileStatus{WorkingTreeChanged: true},
		},
		{
			name:  "staged clean worktree",
			entry: git.FileStatus{Staging: git.Modified, Worktree: git.Unmodified},
			want:  &domain.FileStatus{HasIndexEntry: true},
		},
		{
			name:  "staged with further edits",
			entry: git.FileStatus{Staging: git.Added, Worktree: git.Modified},
			want:  &domain.FileStatus{HasIndexEntry: true, WorkingTreeChanged: true},
		},
		{
			name:  "untracked",
			entry: git.FileStatus{Staging: git.Untracked, Worktree: git.Untracked},
			want:  &domain.FileStatus{WorkingTreeChanged: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := tt.entry
			assert.Equal(t, tt.want, statusRecord(&entry))
		})
	}
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	t.Run("should pass a relative path through in slash form", func(t *testing.T) {
		t.Parallel()

		// when
		rel, err := relativePath("/repo", filepath.Join("src", "main.go"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "src/main.go", rel)
	})

	t.Run("should relativize an absolute path inside the repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		rel, err := relativePath(dir, filepath.Join(dir, "src", "main.go"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "src/main.go", rel)
	})
}
