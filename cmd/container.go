package cmd

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/tsoliangwu0130/revlens/application"
	"github.com/tsoliangwu0130/revlens/config"
	"github.com/tsoliangwu0130/revlens/domain"
	"github.com/tsoliangwu0130/revlens/infrastructure/gitlocal"
	"github.com/tsoliangwu0130/revlens/infrastructure/presenter"
)

// buildContainer wires the collaborators bottom-up: infrastructure
// providers, then the resolver, then the application services.
func buildContainer(cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	constructors := []interface{}{
		func() *config.Config { return cfg },
		func() domain.HistoryProvider { return gitlocal.New() },
		func() domain.RemoteLister { return gitlocal.New() },
		func(c *config.Config) domain.DiffPresenter {
			return presenter.NewConsole(os.Stdout, c.Diff.Tool)
		},
		application.NewPreviousRevisionResolver,
		application.NewDiffService,
		application.NewRemoteService,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, fmt.Errorf("failed to register constructor: %w", err)
		}
	}

	return container, nil
}

// loadConfig resolves the configuration from --config, the standard
// locations, or the built-in defaults when no file exists, and applies the
// configured log level unless --verbose already forced debug output.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := configPath
	if path == "" {
		if found, err := config.FindConfigFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if !verbose {
		level, err := logger.ParseLevel(cfg.Log.Level)
		if err == nil {
			logger.SetLevel(level)
		}
	}

	return cfg, nil
}
