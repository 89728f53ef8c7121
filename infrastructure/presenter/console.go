// Package presenter implements the outbound diff-presentation surface on
// the terminal. It describes the resolved comparison; rendering actual diff
// content is left to the user's diff tool.
package presenter

import (
	"context"
	"fmt"
	"io"

	"github.com/tsoliangwu0130/revlens/domain"
)

const shortRevisionLen = 7

// Console writes resolved comparisons to the given writer. The tool label
// is informational: it names the diff tool the user has configured, it is
// not executed here.
type Console struct {
	out  io.Writer
	tool string
}

// NewConsole creates a console presenter writing to out.
func NewConsole(out io.Writer, tool string) *Console {
	if tool == "" {
		tool = "diff"
	}
	return &Console{out: out, tool: tool}
}

var _ domain.DiffPresenter = (*Console)(nil)

// PresentComparison prints both sides of the comparison, oldest first.
func (c *Console) PresentComparison(_ context.Context, req domain.DiffRequest) error {
	_, err := fmt.Fprintf(
		c.out, "%s %s %s (line %d)\n",
		c.tool, describeSide(req.Left), describeSide(req.Right), req.Line,
	)
	return err
}

// PresentWorkingDiff prints a working-vs-index comparison anchored at the
// reference commit.
func (c *Console) PresentWorkingDiff(_ context.Context, req domain.WorkingDiffRequest) error {
	_, err := fmt.Fprintf(
		c.out, "%s index:%s working tree:%s (at %s, line %d)\n",
		c.tool, req.FilePath, req.FilePath, shortRevision(req.Reference.Revision), req.Line,
	)
	return err
}

func describeSide(side domain.ComparisonSide) string {
	switch side.Revision {
	case domain.RevisionWorkingTree:
		return "working tree:" + side.Path
	case domain.RevisionStagedUncommitted:
		return "index:" + side.Path
	case domain.RevisionDeletedOrMissing:
		return "(missing):" + side.Path
	default:
		return shortRevision(side.Revision) + ":" + side.Path
	}
}

func shortRevision(revision string) string {
	if len(revision) > shortRevisionLen {
		return revision[:shortRevisionLen]
	}
	return revision
}
