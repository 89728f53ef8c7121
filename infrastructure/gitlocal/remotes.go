package gitlocal

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
)

// RemoteListing renders the repository's configured remotes in the
// `git remote -v` line format: the first URL as the fetch endpoint, then
// every URL as a push endpoint. Remotes are ordered by name so the listing
// is stable across calls.
func (p *Provider) RemoteListing(_ context.Context, repoPath string) (string, error) {
	repo, err := p.open(repoPath)
	if err != nil {
		return "", err
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", fmt.Errorf("failed to list remotes of %q: %w", repoPath, err)
	}

	configs := make([]*gitconfig.RemoteConfig, 0, len(remotes))
	for _, remote := range remotes {
		configs = append(configs, remote.Config())
	}

	return formatListing(configs), nil
}

func formatListing(configs []*gitconfig.RemoteConfig) string {
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	var b strings.Builder
	for _, cfg := range configs {
		if len(cfg.URLs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\t%s (fetch)\n", cfg.Name, cfg.URLs[0])
		for _, url := range cfg.URLs {
			fmt.Fprintf(&b, "%s\t%s (push)\n", cfg.Name, url)
		}
	}
	return b.String()
}
