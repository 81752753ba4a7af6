// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/seedtools/ghseed/internal/domain"
	"github.com/seedtools/ghseed/internal/infra/config"
	"github.com/seedtools/ghseed/internal/infra/executor"
	"github.com/seedtools/ghseed/internal/infra/github"
	"github.com/seedtools/ghseed/internal/infra/gitrepo"
	"github.com/seedtools/ghseed/internal/infra/logging"
	"github.com/seedtools/ghseed/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	WorkDir string // Directory the command was invoked from
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	GitHub       domain.GitHub
	Locator      domain.RepoLocator
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given directory.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Fall back to defaults; the config error surfaces again when
		// a command loads the config itself.
		appConfig = domain.NewDefaultConfig()
	}

	logger := logging.New(os.Stderr, appConfig.Log.Level)

	execClient := executor.NewClient()

	return &Container{
		Executor:     execClient,
		GitHub:       github.NewClientInDir(execClient, dir),
		Locator:      gitrepo.NewLocator(dir),
		ConfigLoader: configLoader,
		Clock:        domain.RealClock{},
		Logger:       logger,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, gh domain.GitHub, loader domain.ConfigLoader, locator domain.RepoLocator, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		GitHub:       gh,
		ConfigLoader: loader,
		Locator:      locator,
		Clock:        clock,
		Logger:       logger,
		Config:       cfg,
	}
}

// ResolveRepo returns the target repository: the explicit flag value, then
// the configured repo, then the origin remote of the working directory.
// Empty means gh resolves the repository from the working directory itself.
func (c *Container) ResolveRepo(flagRepo string, cfg *domain.Config) string {
	if flagRepo != "" {
		return flagRepo
	}
	if cfg != nil && cfg.Import.Repo != "" {
		return cfg.Import.Repo
	}
	if c.Locator != nil {
		if repo, err := c.Locator.OriginRepo(); err == nil {
			return repo
		}
	}
	return ""
}

// UseCase factory methods

// ImportIssuesUseCase returns a new ImportIssues use case.
// stdout and stderr are the writers for progress and failure reporting.
func (c *Container) ImportIssuesUseCase(stdout, stderr io.Writer) *usecase.ImportIssues {
	return usecase.NewImportIssues(c.GitHub, c.Clock, c.Logger, stdout, stderr)
}

// ListLabelsUseCase returns a new ListLabels use case.
func (c *Container) ListLabelsUseCase() *usecase.ListLabels {
	return usecase.NewListLabels(c.GitHub, c.Logger)
}
