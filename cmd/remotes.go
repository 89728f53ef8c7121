package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsoliangwu0130/revlens/application"
	"github.com/tsoliangwu0130/revlens/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var remotesCmd = &cobra.Command{
	Use:   "remotes",
	Short: "List the repository's remotes as structured descriptors",
	Long: `Parse the repository's remote listing into structured descriptors:
name, URL, host, resource path, and the capability tags each URL supports.
Listing lines carrying the same URL are merged into a single descriptor.`,
	RunE: runRemotes,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(remotesCmd)
}

func runRemotes(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	container, err := buildContainer(cfg)
	if err != nil {
		return err
	}

	return container.Invoke(func(svc *application.RemoteService) error {
		descriptors, listErr := svc.List(ctx, repoPath)
		if listErr != nil {
			return listErr
		}
		for _, d := range descriptors {
			fmt.Fprintln(cmd.OutOrStdout(), formatDescriptor(d))
		}
		return nil
	})
}

func formatDescriptor(d domain.RemoteDescriptor) string {
	return fmt.Sprintf(
		"%s\t%s\t%s\t[%s]",
		d.Name, d.Host, d.ResourcePath, strings.Join(d.Capabilities, ", "),
	)
}
