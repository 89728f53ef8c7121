package cmd

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tsoliangwu0130/revlens/application"
	"github.com/tsoliangwu0130/revlens/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	startingRevision string
	inDiffView       bool
	lineHint         int
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var previousCmd = &cobra.Command{
	Use:   "previous <file>",
	Short: "Resolve the previous comparison point for a file",
	Long: `Determine which revision (or working-tree state) a file should be
compared against, and hand the resolved comparison to the diff presenter.

Without --rev the file is resolved against the live working tree: staged
changes diff against the index, unstaged changes against the working copy.
With --rev the comparison runs between that revision and its predecessor,
following renames. --in-diff-view looks one step further back, for use
when the current view already shows the revision against its parent.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrevious,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	previousCmd.Flags().StringVar(&startingRevision, "rev", "", "Starting revision (defaults to the working tree)")
	previousCmd.Flags().BoolVar(&inDiffView, "in-diff-view", false, "Resolve from within an already-open diff view")
	previousCmd.Flags().IntVar(&lineHint, "line", 0, "Cursor line to carry into the diff view")
	rootCmd.AddCommand(previousCmd)
}

func runPrevious(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	container, err := buildContainer(cfg)
	if err != nil {
		return err
	}

	query := buildQuery(repoPath, args[0], startingRevision, inDiffView, lineHint)
	logger.Debugf("Resolving previous revision for %q in %q", query.FilePath, query.RepoPath)

	return container.Invoke(func(svc *application.DiffService) error {
		return svc.DiffWithPrevious(ctx, query)
	})
}

func buildQuery(repo, file, revision string, diffView bool, line int) domain.RevisionQuery {
	return domain.RevisionQuery{
		RepoPath:         repo,
		FilePath:         file,
		StartingRevision: revision,
		InDiffView:       diffView,
		Line:             line,
	}
}
