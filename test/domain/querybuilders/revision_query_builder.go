package querybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/tsoliangwu0130/revlens/domain"
)

// RevisionQueryBuilder helps create test revision queries with a fluent interface.
type RevisionQueryBuilder struct {
	*testkit.BaseBuilder
	repoPath         string
	filePath         string
	startingRevision string
	commit           *domain.Commit
	inDiffView       bool
	line             int
}

// NewRevisionQueryBuilder creates a new query builder with sensible defaults.
func NewRevisionQueryBuilder() *RevisionQueryBuilder {
	return &RevisionQueryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		repoPath:    "/repo",
		filePath:    "src/main.go",
	}
}

// WithRepoPath sets the repository path.
func (b *RevisionQueryBuilder) WithRepoPath(path string) *RevisionQueryBuilder {
	b.repoPath = path
	return b
}

// WithFilePath sets the file path.
func (b *RevisionQueryBuilder) WithFilePath(path string) *RevisionQueryBuilder {
	b.filePath = path
	return b
}

// WithStartingRevision sets the starting revision.
func (b *RevisionQueryBuilder) WithStartingRevision(revision string) *RevisionQueryBuilder {
	b.startingRevision = revision
	return b
}

// WithCommit sets a pre-resolved commit.
func (b *RevisionQueryBuilder) WithCommit(commit *domain.Commit) *RevisionQueryBuilder {
	b.commit = commit
	return b
}

// InDiffView marks the query as originating from an open diff view.
func (b *RevisionQueryBuilder) InDiffView() *RevisionQueryBuilder {
	b.inDiffView = true
	return b
}

// WithLine sets the cursor line hint.
func (b *RevisionQueryBuilder) WithLine(line int) *RevisionQueryBuilder {
	b.line = line
	return b
}

// Build creates the query (satisfies testkit.Builder interface).
func (b *RevisionQueryBuilder) Build() interface{} {
	return b.BuildQuery()
}

// BuildQuery creates the query with a concrete return type.
func (b *RevisionQueryBuilder) BuildQuery() domain.RevisionQuery {
	return domain.RevisionQuery{
		RepoPath:         b.repoPath,
		FilePath:         b.filePath,
		StartingRevision: b.startingRevision,
		Commit:           b.commit,
		InDiffView:       b.inDiffView,
		Line:             b.line,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RevisionQueryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repoPath = "/repo"
	b.filePath = "src/main.go"
	b.startingRevision = ""
	b.commit = nil
	b.inDiffView = false
	b.line = 0
	return b
}

// Clone creates a deep copy of the RevisionQueryBuilder.
func (b *RevisionQueryBuilder) Clone() testkit.Builder {
	return &RevisionQueryBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repoPath:         b.repoPath,
		filePath:         b.filePath,
		startingRevision: b.startingRevision,
		commit:           b.commit,
		inDiffView:       b.inDiffView,
		line:             b.line,
	}
}
